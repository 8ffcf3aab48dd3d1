// file: internals/features/records/trainer_certifications/model/trainer_certification_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainerCertificationModel is a trainer aptitude certificate (AEVO or
// equivalent). A nil valid-until means the certificate does not expire.
type TrainerCertificationModel struct {
	// ============ PK & Tenant ============
	TrainerCertificationID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:trainer_certification_id" json:"trainer_certification_id"`
	TrainerCertificationCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:trainer_certification_company_id" json:"trainer_certification_company_id"`

	TrainerCertificationTrainerID uuid.UUID `gorm:"type:uuid;not null;index;column:trainer_certification_trainer_id" json:"trainer_certification_trainer_id"`

	TrainerCertificationTitle    string `gorm:"type:varchar(160);not null;column:trainer_certification_title" json:"trainer_certification_title"`
	TrainerCertificationIssuedBy string `gorm:"type:varchar(160);column:trainer_certification_issued_by" json:"trainer_certification_issued_by,omitempty"`

	TrainerCertificationIssuedAt   time.Time  `gorm:"type:date;not null;column:trainer_certification_issued_at" json:"trainer_certification_issued_at"`
	TrainerCertificationValidUntil *time.Time `gorm:"type:date;column:trainer_certification_valid_until" json:"trainer_certification_valid_until,omitempty"`

	// ============ Audit / Soft delete ============
	TrainerCertificationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:trainer_certification_created_at" json:"trainer_certification_created_at"`
	TrainerCertificationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:trainer_certification_updated_at" json:"trainer_certification_updated_at"`
	TrainerCertificationDeletedAt gorm.DeletedAt `gorm:"column:trainer_certification_deleted_at;index" json:"trainer_certification_deleted_at,omitempty"`
}

func (TrainerCertificationModel) TableName() string { return "trainer_certifications" }

func (m *TrainerCertificationModel) BeforeSave(tx *gorm.DB) error {
	m.TrainerCertificationTitle = strings.TrimSpace(m.TrainerCertificationTitle)
	if m.TrainerCertificationTitle == "" {
		return errors.New("trainer_certification_title is required")
	}
	if m.TrainerCertificationIssuedAt.IsZero() {
		return errors.New("trainer_certification_issued_at is required")
	}
	if m.TrainerCertificationValidUntil != nil && m.TrainerCertificationValidUntil.Before(m.TrainerCertificationIssuedAt) {
		return errors.New("trainer_certification_valid_until must not precede the issue date")
	}
	return nil
}

// ValidOn reports whether the certificate covers the given date.
func (m *TrainerCertificationModel) ValidOn(on time.Time) bool {
	if on.Before(m.TrainerCertificationIssuedAt) {
		return false
	}
	if m.TrainerCertificationValidUntil == nil {
		return true
	}
	return !on.After(*m.TrainerCertificationValidUntil)
}
