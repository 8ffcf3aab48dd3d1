// file: internals/features/apprenticeship/curriculum/model/curriculum_unit_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CurriculumUnitModel is one mandated block of instructional content inside an
// occupation's curriculum. Immutable from the planner's point of view; the
// sequence number fixes the order units are scheduled in.
type CurriculumUnitModel struct {
	// ============ PK & Tenant ============
	CurriculumUnitID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:curriculum_unit_id" json:"curriculum_unit_id"`
	CurriculumUnitCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:curriculum_unit_company_id" json:"curriculum_unit_company_id"`

	CurriculumUnitOccupationID uuid.UUID `gorm:"type:uuid;not null;index;column:curriculum_unit_occupation_id" json:"curriculum_unit_occupation_id"`

	// 1-based position within the occupation's curriculum.
	CurriculumUnitSequence int    `gorm:"type:integer;not null;column:curriculum_unit_sequence" json:"curriculum_unit_sequence"`
	CurriculumUnitTitle    string `gorm:"type:text;not null;column:curriculum_unit_title" json:"curriculum_unit_title"`

	CurriculumUnitAllottedHours int `gorm:"type:integer;not null;column:curriculum_unit_allotted_hours" json:"curriculum_unit_allotted_hours"`
	// Training year (1..N) this unit is intended for.
	CurriculumUnitTargetYear int `gorm:"type:integer;not null;default:1;column:curriculum_unit_target_year" json:"curriculum_unit_target_year"`

	CurriculumUnitObjectives   pq.StringArray `gorm:"type:text[];column:curriculum_unit_objectives" json:"curriculum_unit_objectives,omitempty"`
	CurriculumUnitTopics       pq.StringArray `gorm:"type:text[];column:curriculum_unit_topics" json:"curriculum_unit_topics,omitempty"`
	CurriculumUnitCompetencies pq.StringArray `gorm:"type:text[];column:curriculum_unit_competencies" json:"curriculum_unit_competencies,omitempty"`

	// ============ Audit / Soft delete ============
	CurriculumUnitCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:curriculum_unit_created_at" json:"curriculum_unit_created_at"`
	CurriculumUnitUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:curriculum_unit_updated_at" json:"curriculum_unit_updated_at"`
	CurriculumUnitDeletedAt gorm.DeletedAt `gorm:"column:curriculum_unit_deleted_at;index" json:"curriculum_unit_deleted_at,omitempty"`
}

func (CurriculumUnitModel) TableName() string { return "curriculum_units" }

func (m *CurriculumUnitModel) BeforeSave(tx *gorm.DB) error {
	m.CurriculumUnitTitle = strings.TrimSpace(m.CurriculumUnitTitle)

	if m.CurriculumUnitTitle == "" {
		return errors.New("curriculum_unit_title must not be empty")
	}
	if m.CurriculumUnitSequence < 1 {
		return errors.New("curriculum_unit_sequence must be >= 1")
	}
	if m.CurriculumUnitAllottedHours <= 0 {
		return errors.New("curriculum_unit_allotted_hours must be > 0")
	}
	if m.CurriculumUnitTargetYear < 1 {
		return errors.New("curriculum_unit_target_year must be >= 1")
	}
	return nil
}
