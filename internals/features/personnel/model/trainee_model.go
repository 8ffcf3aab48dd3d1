// file: internals/features/personnel/model/trainee_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TraineeModel carries the personal data the compliance checks depend on:
// date of birth decides minor vs adult working-time limits, the monthly
// compensation is matched against the minimum-wage table.
type TraineeModel struct {
	// ============ PK & Tenant ============
	TraineeID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:trainee_id" json:"trainee_id"`
	TraineeCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:trainee_company_id" json:"trainee_company_id"`

	// Optional link to a login account.
	TraineeUserID *uuid.UUID `gorm:"type:uuid;index;column:trainee_user_id" json:"trainee_user_id,omitempty"`

	TraineeFullName    string    `gorm:"type:varchar(120);not null;column:trainee_full_name" json:"trainee_full_name"`
	TraineeDateOfBirth time.Time `gorm:"type:date;not null;column:trainee_date_of_birth" json:"trainee_date_of_birth"`

	// Gross monthly pay in cents. Stored as integer cents to keep the wage
	// comparison exact.
	TraineeMonthlyCompensationCents int64 `gorm:"type:bigint;not null;default:0;column:trainee_monthly_compensation_cents" json:"trainee_monthly_compensation_cents"`

	TraineeIsActive bool `gorm:"not null;default:true;column:trainee_is_active" json:"trainee_is_active"`

	// ============ Audit / Soft delete ============
	TraineeCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:trainee_created_at" json:"trainee_created_at"`
	TraineeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:trainee_updated_at" json:"trainee_updated_at"`
	TraineeDeletedAt gorm.DeletedAt `gorm:"column:trainee_deleted_at;index" json:"trainee_deleted_at,omitempty"`
}

func (TraineeModel) TableName() string { return "trainees" }

func (m *TraineeModel) BeforeSave(tx *gorm.DB) error {
	m.TraineeFullName = strings.TrimSpace(m.TraineeFullName)
	if m.TraineeFullName == "" {
		return errors.New("trainee_full_name is required")
	}
	if m.TraineeDateOfBirth.IsZero() {
		return errors.New("trainee_date_of_birth is required")
	}
	if m.TraineeMonthlyCompensationCents < 0 {
		return errors.New("trainee_monthly_compensation_cents must be >= 0")
	}
	return nil
}

// AgeAt returns the trainee's age in full years on the given date.
func (m *TraineeModel) AgeAt(on time.Time) int {
	years := on.Year() - m.TraineeDateOfBirth.Year()
	anniversary := m.TraineeDateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(on) {
		years--
	}
	return years
}
