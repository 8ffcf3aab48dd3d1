// file: internals/features/apprenticeship/examinations/model/examination_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Examination types.
const (
	ExamTypeInterim    = "interim"
	ExamTypeFinalPart1 = "final_part_1"
	ExamTypeFinalPart2 = "final_part_2"
)

// Examination workflow states:
// not_scheduled → registered → sat → passed | failed; failed → registered (re-sit).
const (
	ExamStatusNotScheduled = "not_scheduled"
	ExamStatusRegistered   = "registered"
	ExamStatusSat          = "sat"
	ExamStatusPassed       = "passed"
	ExamStatusFailed       = "failed"
)

type ExaminationModel struct {
	// ============ PK & Tenant ============
	ExaminationID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:examination_id" json:"examination_id"`
	ExaminationCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:examination_company_id" json:"examination_company_id"`

	ExaminationPlanID uuid.UUID `gorm:"type:uuid;not null;index;column:examination_plan_id" json:"examination_plan_id"`

	ExaminationType       string    `gorm:"type:varchar(16);not null;column:examination_type" json:"examination_type"`
	ExaminationTargetDate time.Time `gorm:"type:date;not null;column:examination_target_date" json:"examination_target_date"`

	ExaminationDurationMinutes int `gorm:"type:integer;not null;column:examination_duration_minutes" json:"examination_duration_minutes"`

	// Section layout: [{name, modality, duration_minutes, weight}, ...].
	ExaminationSections      datatypes.JSON `gorm:"type:jsonb;column:examination_sections" json:"examination_sections"`
	ExaminationOverallWeight float64        `gorm:"type:numeric(5,2);not null;default:1;column:examination_overall_weight" json:"examination_overall_weight"`

	ExaminationStatus       string     `gorm:"type:varchar(16);not null;default:'not_scheduled';column:examination_status" json:"examination_status"`
	ExaminationRegisteredAt *time.Time `gorm:"type:timestamptz;column:examination_registered_at" json:"examination_registered_at,omitempty"`
	ExaminationSatAt        *time.Time `gorm:"type:timestamptz;column:examination_sat_at" json:"examination_sat_at,omitempty"`

	// ============ Audit / Soft delete ============
	ExaminationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:examination_created_at" json:"examination_created_at"`
	ExaminationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:examination_updated_at" json:"examination_updated_at"`
	ExaminationDeletedAt gorm.DeletedAt `gorm:"column:examination_deleted_at;index" json:"examination_deleted_at,omitempty"`
}

func (ExaminationModel) TableName() string { return "examinations" }

func ValidExamType(t string) bool {
	switch t {
	case ExamTypeInterim, ExamTypeFinalPart1, ExamTypeFinalPart2:
		return true
	}
	return false
}

func ValidExamStatus(s string) bool {
	switch s {
	case ExamStatusNotScheduled, ExamStatusRegistered, ExamStatusSat, ExamStatusPassed, ExamStatusFailed:
		return true
	}
	return false
}

func (m *ExaminationModel) BeforeSave(tx *gorm.DB) error {
	if !ValidExamType(m.ExaminationType) {
		return errors.New("examination_type is invalid")
	}
	if !ValidExamStatus(m.ExaminationStatus) {
		return errors.New("examination_status is invalid")
	}
	if m.ExaminationDurationMinutes <= 0 {
		return errors.New("examination_duration_minutes must be > 0")
	}
	return nil
}
