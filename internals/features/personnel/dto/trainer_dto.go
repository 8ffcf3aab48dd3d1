// file: internals/features/personnel/dto/trainer_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"azubiplan_backend/internals/features/personnel/model"
)

type TrainerCreateDTO struct {
	TrainerUserID   *uuid.UUID `json:"trainer_user_id,omitempty"`
	TrainerFullName string     `json:"trainer_full_name" validate:"required,min=2,max=120"`
	TrainerEmail    string     `json:"trainer_email"     validate:"omitempty,email,max=160"`
}

func (p *TrainerCreateDTO) Normalize() {
	p.TrainerFullName = strings.TrimSpace(p.TrainerFullName)
	p.TrainerEmail = strings.ToLower(strings.TrimSpace(p.TrainerEmail))
}

func (p *TrainerCreateDTO) ToModel(companyID uuid.UUID) model.TrainerModel {
	return model.TrainerModel{
		TrainerCompanyID: companyID,
		TrainerUserID:    p.TrainerUserID,
		TrainerFullName:  p.TrainerFullName,
		TrainerEmail:     p.TrainerEmail,
		TrainerIsActive:  true,
	}
}

type TrainerUpdateDTO struct {
	TrainerFullName *string `json:"trainer_full_name,omitempty" validate:"omitempty,min=2,max=120"`
	TrainerEmail    *string `json:"trainer_email,omitempty"     validate:"omitempty,email,max=160"`
	TrainerIsActive *bool   `json:"trainer_is_active,omitempty"`
}

func (p *TrainerUpdateDTO) ApplyUpdates(m *model.TrainerModel) {
	if p.TrainerFullName != nil {
		m.TrainerFullName = strings.TrimSpace(*p.TrainerFullName)
	}
	if p.TrainerEmail != nil {
		m.TrainerEmail = strings.ToLower(strings.TrimSpace(*p.TrainerEmail))
	}
	if p.TrainerIsActive != nil {
		m.TrainerIsActive = *p.TrainerIsActive
	}
}

type TrainerResponseDTO struct {
	TrainerID        uuid.UUID  `json:"trainer_id"`
	TrainerCompanyID uuid.UUID  `json:"trainer_company_id"`
	TrainerUserID    *uuid.UUID `json:"trainer_user_id,omitempty"`
	TrainerFullName  string     `json:"trainer_full_name"`
	TrainerEmail     string     `json:"trainer_email,omitempty"`
	TrainerIsActive  bool       `json:"trainer_is_active"`
	TrainerCreatedAt time.Time  `json:"trainer_created_at"`
	TrainerUpdatedAt time.Time  `json:"trainer_updated_at"`
}

func FromTrainerModel(ent model.TrainerModel) TrainerResponseDTO {
	return TrainerResponseDTO{
		TrainerID:        ent.TrainerID,
		TrainerCompanyID: ent.TrainerCompanyID,
		TrainerUserID:    ent.TrainerUserID,
		TrainerFullName:  ent.TrainerFullName,
		TrainerEmail:     ent.TrainerEmail,
		TrainerIsActive:  ent.TrainerIsActive,
		TrainerCreatedAt: ent.TrainerCreatedAt,
		TrainerUpdatedAt: ent.TrainerUpdatedAt,
	}
}

func FromTrainerModels(list []model.TrainerModel) []TrainerResponseDTO {
	out := make([]TrainerResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromTrainerModel(it))
	}
	return out
}
