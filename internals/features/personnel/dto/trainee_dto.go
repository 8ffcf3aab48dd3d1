// file: internals/features/personnel/dto/trainee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"azubiplan_backend/internals/features/personnel/model"
)

// =======================
// Request DTO
// =======================

type TraineeCreateDTO struct {
	TraineeUserID                   *uuid.UUID `json:"trainee_user_id,omitempty"`
	TraineeFullName                 string     `json:"trainee_full_name"                   validate:"required,min=2,max=120"`
	TraineeDateOfBirth              time.Time  `json:"trainee_date_of_birth"               validate:"required"`
	TraineeMonthlyCompensationCents int64      `json:"trainee_monthly_compensation_cents"  validate:"gte=0"`
}

func (p *TraineeCreateDTO) Normalize() {
	p.TraineeFullName = strings.TrimSpace(p.TraineeFullName)
}

func (p *TraineeCreateDTO) ToModel(companyID uuid.UUID) model.TraineeModel {
	return model.TraineeModel{
		TraineeCompanyID:                companyID,
		TraineeUserID:                   p.TraineeUserID,
		TraineeFullName:                 p.TraineeFullName,
		TraineeDateOfBirth:              p.TraineeDateOfBirth,
		TraineeMonthlyCompensationCents: p.TraineeMonthlyCompensationCents,
		TraineeIsActive:                 true,
	}
}

type TraineeUpdateDTO struct {
	TraineeFullName                 *string    `json:"trainee_full_name,omitempty"                  validate:"omitempty,min=2,max=120"`
	TraineeDateOfBirth              *time.Time `json:"trainee_date_of_birth,omitempty"`
	TraineeMonthlyCompensationCents *int64     `json:"trainee_monthly_compensation_cents,omitempty" validate:"omitempty,gte=0"`
	TraineeIsActive                 *bool      `json:"trainee_is_active,omitempty"`
}

func (p *TraineeUpdateDTO) ApplyUpdates(m *model.TraineeModel) {
	if p.TraineeFullName != nil {
		m.TraineeFullName = strings.TrimSpace(*p.TraineeFullName)
	}
	if p.TraineeDateOfBirth != nil {
		m.TraineeDateOfBirth = *p.TraineeDateOfBirth
	}
	if p.TraineeMonthlyCompensationCents != nil {
		m.TraineeMonthlyCompensationCents = *p.TraineeMonthlyCompensationCents
	}
	if p.TraineeIsActive != nil {
		m.TraineeIsActive = *p.TraineeIsActive
	}
}

// =======================
// Response DTO
// =======================

type TraineeResponseDTO struct {
	TraineeID                       uuid.UUID  `json:"trainee_id"`
	TraineeCompanyID                uuid.UUID  `json:"trainee_company_id"`
	TraineeUserID                   *uuid.UUID `json:"trainee_user_id,omitempty"`
	TraineeFullName                 string     `json:"trainee_full_name"`
	TraineeDateOfBirth              time.Time  `json:"trainee_date_of_birth"`
	TraineeMonthlyCompensationCents int64      `json:"trainee_monthly_compensation_cents"`
	TraineeIsActive                 bool       `json:"trainee_is_active"`
	TraineeCreatedAt                time.Time  `json:"trainee_created_at"`
	TraineeUpdatedAt                time.Time  `json:"trainee_updated_at"`
}

func FromTraineeModel(ent model.TraineeModel) TraineeResponseDTO {
	return TraineeResponseDTO{
		TraineeID:                       ent.TraineeID,
		TraineeCompanyID:                ent.TraineeCompanyID,
		TraineeUserID:                   ent.TraineeUserID,
		TraineeFullName:                 ent.TraineeFullName,
		TraineeDateOfBirth:              ent.TraineeDateOfBirth,
		TraineeMonthlyCompensationCents: ent.TraineeMonthlyCompensationCents,
		TraineeIsActive:                 ent.TraineeIsActive,
		TraineeCreatedAt:                ent.TraineeCreatedAt,
		TraineeUpdatedAt:                ent.TraineeUpdatedAt,
	}
}

func FromTraineeModels(list []model.TraineeModel) []TraineeResponseDTO {
	out := make([]TraineeResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromTraineeModel(it))
	}
	return out
}
