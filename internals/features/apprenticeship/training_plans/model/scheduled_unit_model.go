// file: internals/features/apprenticeship/training_plans/model/scheduled_unit_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scheduled unit statuses. Only the status column mutates after creation;
// windows and order are fixed at plan creation and never re-sequenced.
const (
	ScheduledUnitStatusPlanned   = "planned"
	ScheduledUnitStatusActive    = "active"
	ScheduledUnitStatusCompleted = "completed"
	ScheduledUnitStatusOverdue   = "overdue"
)

type ScheduledUnitModel struct {
	// ============ PK & Tenant ============
	ScheduledUnitID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:scheduled_unit_id" json:"scheduled_unit_id"`
	ScheduledUnitCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:scheduled_unit_company_id" json:"scheduled_unit_company_id"`

	ScheduledUnitPlanID           uuid.UUID `gorm:"type:uuid;not null;index;column:scheduled_unit_plan_id" json:"scheduled_unit_plan_id"`
	ScheduledUnitCurriculumUnitID uuid.UUID `gorm:"type:uuid;not null;column:scheduled_unit_curriculum_unit_id" json:"scheduled_unit_curriculum_unit_id"`

	ScheduledUnitSequence int    `gorm:"type:integer;not null;column:scheduled_unit_sequence" json:"scheduled_unit_sequence"`
	ScheduledUnitTitle    string `gorm:"type:text;not null;column:scheduled_unit_title" json:"scheduled_unit_title"`

	// Half-open window [start, end).
	ScheduledUnitStartDate time.Time `gorm:"type:date;not null;column:scheduled_unit_start_date" json:"scheduled_unit_start_date"`
	ScheduledUnitEndDate   time.Time `gorm:"type:date;not null;column:scheduled_unit_end_date" json:"scheduled_unit_end_date"`

	ScheduledUnitStatus string `gorm:"type:varchar(16);not null;default:'planned';column:scheduled_unit_status" json:"scheduled_unit_status"`

	// ============ Audit / Soft delete ============
	ScheduledUnitCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:scheduled_unit_created_at" json:"scheduled_unit_created_at"`
	ScheduledUnitUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:scheduled_unit_updated_at" json:"scheduled_unit_updated_at"`
	ScheduledUnitDeletedAt gorm.DeletedAt `gorm:"column:scheduled_unit_deleted_at;index" json:"scheduled_unit_deleted_at,omitempty"`
}

func (ScheduledUnitModel) TableName() string { return "scheduled_units" }

func ValidScheduledUnitStatus(s string) bool {
	switch s {
	case ScheduledUnitStatusPlanned, ScheduledUnitStatusActive, ScheduledUnitStatusCompleted, ScheduledUnitStatusOverdue:
		return true
	}
	return false
}

func (m *ScheduledUnitModel) BeforeSave(tx *gorm.DB) error {
	if !m.ScheduledUnitEndDate.After(m.ScheduledUnitStartDate) {
		return errors.New("scheduled_unit_end_date must be after scheduled_unit_start_date")
	}
	if !ValidScheduledUnitStatus(m.ScheduledUnitStatus) {
		return errors.New("scheduled_unit_status is invalid")
	}
	return nil
}
