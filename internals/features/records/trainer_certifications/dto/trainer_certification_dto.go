// file: internals/features/records/trainer_certifications/dto/trainer_certification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"azubiplan_backend/internals/features/records/trainer_certifications/model"
)

// =======================
// Request DTO
// =======================

type TrainerCertificationCreateDTO struct {
	TrainerCertificationTrainerID  uuid.UUID  `json:"trainer_certification_trainer_id" validate:"required"`
	TrainerCertificationTitle      string     `json:"trainer_certification_title"      validate:"required,min=2,max=160"`
	TrainerCertificationIssuedBy   string     `json:"trainer_certification_issued_by"  validate:"omitempty,max=160"`
	TrainerCertificationIssuedAt   time.Time  `json:"trainer_certification_issued_at"  validate:"required"`
	TrainerCertificationValidUntil *time.Time `json:"trainer_certification_valid_until,omitempty"`
}

func (p *TrainerCertificationCreateDTO) Normalize() {
	p.TrainerCertificationTitle = strings.TrimSpace(p.TrainerCertificationTitle)
	p.TrainerCertificationIssuedBy = strings.TrimSpace(p.TrainerCertificationIssuedBy)
}

func (p *TrainerCertificationCreateDTO) ToModel(companyID uuid.UUID) model.TrainerCertificationModel {
	return model.TrainerCertificationModel{
		TrainerCertificationCompanyID:  companyID,
		TrainerCertificationTrainerID:  p.TrainerCertificationTrainerID,
		TrainerCertificationTitle:      p.TrainerCertificationTitle,
		TrainerCertificationIssuedBy:   p.TrainerCertificationIssuedBy,
		TrainerCertificationIssuedAt:   p.TrainerCertificationIssuedAt,
		TrainerCertificationValidUntil: p.TrainerCertificationValidUntil,
	}
}

// =======================
// Response DTO
// =======================

type TrainerCertificationResponseDTO struct {
	TrainerCertificationID         uuid.UUID  `json:"trainer_certification_id"`
	TrainerCertificationTrainerID  uuid.UUID  `json:"trainer_certification_trainer_id"`
	TrainerCertificationTitle      string     `json:"trainer_certification_title"`
	TrainerCertificationIssuedBy   string     `json:"trainer_certification_issued_by,omitempty"`
	TrainerCertificationIssuedAt   time.Time  `json:"trainer_certification_issued_at"`
	TrainerCertificationValidUntil *time.Time `json:"trainer_certification_valid_until,omitempty"`
	TrainerCertificationCreatedAt  time.Time  `json:"trainer_certification_created_at"`
}

func FromTrainerCertificationModel(ent model.TrainerCertificationModel) TrainerCertificationResponseDTO {
	return TrainerCertificationResponseDTO{
		TrainerCertificationID:         ent.TrainerCertificationID,
		TrainerCertificationTrainerID:  ent.TrainerCertificationTrainerID,
		TrainerCertificationTitle:      ent.TrainerCertificationTitle,
		TrainerCertificationIssuedBy:   ent.TrainerCertificationIssuedBy,
		TrainerCertificationIssuedAt:   ent.TrainerCertificationIssuedAt,
		TrainerCertificationValidUntil: ent.TrainerCertificationValidUntil,
		TrainerCertificationCreatedAt:  ent.TrainerCertificationCreatedAt,
	}
}

func FromTrainerCertificationModels(list []model.TrainerCertificationModel) []TrainerCertificationResponseDTO {
	out := make([]TrainerCertificationResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromTrainerCertificationModel(it))
	}
	return out
}
