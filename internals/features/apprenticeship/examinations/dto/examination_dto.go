// file: internals/features/apprenticeship/examinations/dto/examination_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"azubiplan_backend/internals/features/apprenticeship/examinations/model"
)

// =======================
// Request DTO
// =======================

type ExamRegisterDTO struct {
	// Defaults to today when omitted.
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
}

type ExamSatDTO struct {
	SatAt *time.Time `json:"sat_at,omitempty"`
}

type ExamResultCreateDTO struct {
	SectionScores map[string]float64 `json:"section_scores" validate:"required,min=1"`
}

// =======================
// Response DTO
// =======================

type ExaminationResponseDTO struct {
	ExaminationID              uuid.UUID      `json:"examination_id"`
	ExaminationPlanID          uuid.UUID      `json:"examination_plan_id"`
	ExaminationType            string         `json:"examination_type"`
	ExaminationTargetDate      time.Time      `json:"examination_target_date"`
	ExaminationDurationMinutes int            `json:"examination_duration_minutes"`
	ExaminationSections        datatypes.JSON `json:"examination_sections"`
	ExaminationOverallWeight   float64        `json:"examination_overall_weight"`
	ExaminationStatus          string         `json:"examination_status"`
	ExaminationRegisteredAt    *time.Time     `json:"examination_registered_at,omitempty"`
	ExaminationSatAt           *time.Time     `json:"examination_sat_at,omitempty"`
	ExaminationCreatedAt       time.Time      `json:"examination_created_at"`
	ExaminationUpdatedAt       time.Time      `json:"examination_updated_at"`
}

type ExamResultResponseDTO struct {
	ExamResultID            uuid.UUID      `json:"exam_result_id"`
	ExamResultExaminationID uuid.UUID      `json:"exam_result_examination_id"`
	ExamResultAttempt       int            `json:"exam_result_attempt"`
	ExamResultOverallScore  float64        `json:"exam_result_overall_score"`
	ExamResultSectionScores datatypes.JSON `json:"exam_result_section_scores"`
	ExamResultPassed        bool           `json:"exam_result_passed"`
	ExamResultRecordedAt    time.Time      `json:"exam_result_recorded_at"`
}

// =======================
// Mappers
// =======================

func FromExaminationModel(ent model.ExaminationModel) ExaminationResponseDTO {
	return ExaminationResponseDTO{
		ExaminationID:              ent.ExaminationID,
		ExaminationPlanID:          ent.ExaminationPlanID,
		ExaminationType:            ent.ExaminationType,
		ExaminationTargetDate:      ent.ExaminationTargetDate,
		ExaminationDurationMinutes: ent.ExaminationDurationMinutes,
		ExaminationSections:        ent.ExaminationSections,
		ExaminationOverallWeight:   ent.ExaminationOverallWeight,
		ExaminationStatus:          ent.ExaminationStatus,
		ExaminationRegisteredAt:    ent.ExaminationRegisteredAt,
		ExaminationSatAt:           ent.ExaminationSatAt,
		ExaminationCreatedAt:       ent.ExaminationCreatedAt,
		ExaminationUpdatedAt:       ent.ExaminationUpdatedAt,
	}
}

func FromExaminationModels(list []model.ExaminationModel) []ExaminationResponseDTO {
	out := make([]ExaminationResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromExaminationModel(it))
	}
	return out
}

func FromExamResultModel(ent model.ExamResultModel) ExamResultResponseDTO {
	return ExamResultResponseDTO{
		ExamResultID:            ent.ExamResultID,
		ExamResultExaminationID: ent.ExamResultExaminationID,
		ExamResultAttempt:       ent.ExamResultAttempt,
		ExamResultOverallScore:  ent.ExamResultOverallScore,
		ExamResultSectionScores: ent.ExamResultSectionScores,
		ExamResultPassed:        ent.ExamResultPassed,
		ExamResultRecordedAt:    ent.ExamResultRecordedAt,
	}
}

func FromExamResultModels(list []model.ExamResultModel) []ExamResultResponseDTO {
	out := make([]ExamResultResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromExamResultModel(it))
	}
	return out
}
