// file: internals/features/apprenticeship/training_plans/model/training_plan_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingPlanModel is the concrete, dated schedule derived from an
// occupation's curriculum for one trainee. End date is always start date plus
// the occupation's fixed duration; the hook mirrors that CHECK.
type TrainingPlanModel struct {
	// ============ PK & Tenant ============
	TrainingPlanID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:training_plan_id" json:"training_plan_id"`
	TrainingPlanCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:training_plan_company_id" json:"training_plan_company_id"`

	TrainingPlanTraineeID    uuid.UUID `gorm:"type:uuid;not null;index;column:training_plan_trainee_id" json:"training_plan_trainee_id"`
	TrainingPlanOccupationID uuid.UUID `gorm:"type:uuid;not null;column:training_plan_occupation_id" json:"training_plan_occupation_id"`
	TrainingPlanTrainerID    uuid.UUID `gorm:"type:uuid;not null;index;column:training_plan_trainer_id" json:"training_plan_trainer_id"`

	TrainingPlanStartDate time.Time `gorm:"type:date;not null;column:training_plan_start_date" json:"training_plan_start_date"`
	TrainingPlanEndDate   time.Time `gorm:"type:date;not null;column:training_plan_end_date" json:"training_plan_end_date"`

	// Snapshot of the occupation duration at plan creation time.
	TrainingPlanDurationMonths int `gorm:"type:integer;not null;column:training_plan_duration_months" json:"training_plan_duration_months"`

	TrainingPlanIsActive bool `gorm:"not null;default:true;column:training_plan_is_active" json:"training_plan_is_active"`

	// ============ Audit / Soft delete ============
	TrainingPlanCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:training_plan_created_at" json:"training_plan_created_at"`
	TrainingPlanUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:training_plan_updated_at" json:"training_plan_updated_at"`
	TrainingPlanDeletedAt gorm.DeletedAt `gorm:"column:training_plan_deleted_at;index" json:"training_plan_deleted_at,omitempty"`
}

func (TrainingPlanModel) TableName() string { return "training_plans" }

func (m *TrainingPlanModel) BeforeSave(tx *gorm.DB) error {
	if !m.TrainingPlanEndDate.After(m.TrainingPlanStartDate) {
		return errors.New("training_plan_end_date must be after training_plan_start_date")
	}
	if m.TrainingPlanDurationMonths <= 0 {
		return errors.New("training_plan_duration_months must be > 0")
	}
	return nil
}
