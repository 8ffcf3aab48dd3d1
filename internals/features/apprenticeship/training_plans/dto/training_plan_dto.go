// file: internals/features/apprenticeship/training_plans/dto/training_plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"azubiplan_backend/internals/features/apprenticeship/training_plans/model"
)

// =======================
// Request DTO
// =======================

type TrainingPlanCreateDTO struct {
	TrainingPlanTraineeID    uuid.UUID `json:"training_plan_trainee_id"    validate:"required"`
	TrainingPlanOccupationID uuid.UUID `json:"training_plan_occupation_id" validate:"required"`
	TrainingPlanTrainerID    uuid.UUID `json:"training_plan_trainer_id"    validate:"required"`
	TrainingPlanStartDate    time.Time `json:"training_plan_start_date"    validate:"required"`
}

type ScheduledUnitStatusDTO struct {
	ScheduledUnitStatus string `json:"scheduled_unit_status" validate:"required,oneof=planned active completed overdue"`
}

// =======================
// Response DTO
// =======================

type TrainingPlanResponseDTO struct {
	TrainingPlanID             uuid.UUID `json:"training_plan_id"`
	TrainingPlanCompanyID      uuid.UUID `json:"training_plan_company_id"`
	TrainingPlanTraineeID      uuid.UUID `json:"training_plan_trainee_id"`
	TrainingPlanOccupationID   uuid.UUID `json:"training_plan_occupation_id"`
	TrainingPlanTrainerID      uuid.UUID `json:"training_plan_trainer_id"`
	TrainingPlanStartDate      time.Time `json:"training_plan_start_date"`
	TrainingPlanEndDate        time.Time `json:"training_plan_end_date"`
	TrainingPlanDurationMonths int       `json:"training_plan_duration_months"`
	TrainingPlanIsActive       bool      `json:"training_plan_is_active"`
	TrainingPlanCreatedAt      time.Time `json:"training_plan_created_at"`
	TrainingPlanUpdatedAt      time.Time `json:"training_plan_updated_at"`
}

type ScheduledUnitResponseDTO struct {
	ScheduledUnitID               uuid.UUID `json:"scheduled_unit_id"`
	ScheduledUnitPlanID           uuid.UUID `json:"scheduled_unit_plan_id"`
	ScheduledUnitCurriculumUnitID uuid.UUID `json:"scheduled_unit_curriculum_unit_id"`
	ScheduledUnitSequence         int       `json:"scheduled_unit_sequence"`
	ScheduledUnitTitle            string    `json:"scheduled_unit_title"`
	ScheduledUnitStartDate        time.Time `json:"scheduled_unit_start_date"`
	ScheduledUnitEndDate          time.Time `json:"scheduled_unit_end_date"`
	ScheduledUnitStatus           string    `json:"scheduled_unit_status"`
}

// =======================
// Mappers
// =======================

func FromTrainingPlanModel(ent model.TrainingPlanModel) TrainingPlanResponseDTO {
	return TrainingPlanResponseDTO{
		TrainingPlanID:             ent.TrainingPlanID,
		TrainingPlanCompanyID:      ent.TrainingPlanCompanyID,
		TrainingPlanTraineeID:      ent.TrainingPlanTraineeID,
		TrainingPlanOccupationID:   ent.TrainingPlanOccupationID,
		TrainingPlanTrainerID:      ent.TrainingPlanTrainerID,
		TrainingPlanStartDate:      ent.TrainingPlanStartDate,
		TrainingPlanEndDate:        ent.TrainingPlanEndDate,
		TrainingPlanDurationMonths: ent.TrainingPlanDurationMonths,
		TrainingPlanIsActive:       ent.TrainingPlanIsActive,
		TrainingPlanCreatedAt:      ent.TrainingPlanCreatedAt,
		TrainingPlanUpdatedAt:      ent.TrainingPlanUpdatedAt,
	}
}

func FromTrainingPlanModels(list []model.TrainingPlanModel) []TrainingPlanResponseDTO {
	out := make([]TrainingPlanResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromTrainingPlanModel(it))
	}
	return out
}

func FromScheduledUnitModel(ent model.ScheduledUnitModel) ScheduledUnitResponseDTO {
	return ScheduledUnitResponseDTO{
		ScheduledUnitID:               ent.ScheduledUnitID,
		ScheduledUnitPlanID:           ent.ScheduledUnitPlanID,
		ScheduledUnitCurriculumUnitID: ent.ScheduledUnitCurriculumUnitID,
		ScheduledUnitSequence:         ent.ScheduledUnitSequence,
		ScheduledUnitTitle:            ent.ScheduledUnitTitle,
		ScheduledUnitStartDate:        ent.ScheduledUnitStartDate,
		ScheduledUnitEndDate:          ent.ScheduledUnitEndDate,
		ScheduledUnitStatus:           ent.ScheduledUnitStatus,
	}
}

func FromScheduledUnitModels(list []model.ScheduledUnitModel) []ScheduledUnitResponseDTO {
	out := make([]ScheduledUnitResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromScheduledUnitModel(it))
	}
	return out
}
