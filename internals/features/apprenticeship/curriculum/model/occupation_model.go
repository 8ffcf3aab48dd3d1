// file: internals/features/apprenticeship/curriculum/model/occupation_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OccupationModel is one regulated training profession a company trains for,
// e.g. "Fachinformatiker Anwendungsentwicklung". Reference data: the planner
// reads it, only catalog admin endpoints write it.
type OccupationModel struct {
	// ============ PK & Tenant ============
	OccupationID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:occupation_id" json:"occupation_id"`
	OccupationCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:occupation_company_id" json:"occupation_company_id"`

	// ============ Identity ============
	// Example code: "FIAE", "IKMK"
	OccupationCode  string `gorm:"type:varchar(24);not null;column:occupation_code" json:"occupation_code"`
	OccupationTitle string `gorm:"type:text;not null;column:occupation_title" json:"occupation_title"`

	// Fixed statutory duration of the curriculum.
	OccupationDurationMonths int `gorm:"type:integer;not null;column:occupation_duration_months" json:"occupation_duration_months"`

	// Optional override of the configured exam passing threshold (0..100).
	OccupationPassingThreshold *float64 `gorm:"type:numeric(5,2);column:occupation_passing_threshold" json:"occupation_passing_threshold,omitempty"`

	OccupationIsActive bool `gorm:"not null;default:true;column:occupation_is_active" json:"occupation_is_active"`

	// ============ Audit / Soft delete ============
	OccupationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:occupation_created_at" json:"occupation_created_at"`
	OccupationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:occupation_updated_at" json:"occupation_updated_at"`
	OccupationDeletedAt gorm.DeletedAt `gorm:"column:occupation_deleted_at;index" json:"occupation_deleted_at,omitempty"`
}

func (OccupationModel) TableName() string { return "occupations" }

func (m *OccupationModel) BeforeSave(tx *gorm.DB) error {
	m.OccupationCode = strings.ToUpper(strings.TrimSpace(m.OccupationCode))
	m.OccupationTitle = strings.TrimSpace(m.OccupationTitle)

	if m.OccupationDurationMonths <= 0 {
		return errors.New("occupation_duration_months must be > 0")
	}
	if m.OccupationPassingThreshold != nil {
		if *m.OccupationPassingThreshold < 0 || *m.OccupationPassingThreshold > 100 {
			return errors.New("occupation_passing_threshold must be within 0..100")
		}
	}
	return nil
}
