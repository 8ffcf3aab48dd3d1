// file: internals/features/personnel/model/trainer_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainerModel struct {
	// ============ PK & Tenant ============
	TrainerID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:trainer_id" json:"trainer_id"`
	TrainerCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:trainer_company_id" json:"trainer_company_id"`

	TrainerUserID *uuid.UUID `gorm:"type:uuid;index;column:trainer_user_id" json:"trainer_user_id,omitempty"`

	TrainerFullName string `gorm:"type:varchar(120);not null;column:trainer_full_name" json:"trainer_full_name"`
	TrainerEmail    string `gorm:"type:varchar(160);column:trainer_email" json:"trainer_email,omitempty"`

	TrainerIsActive bool `gorm:"not null;default:true;column:trainer_is_active" json:"trainer_is_active"`

	// ============ Audit / Soft delete ============
	TrainerCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:trainer_created_at" json:"trainer_created_at"`
	TrainerUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:trainer_updated_at" json:"trainer_updated_at"`
	TrainerDeletedAt gorm.DeletedAt `gorm:"column:trainer_deleted_at;index" json:"trainer_deleted_at,omitempty"`
}

func (TrainerModel) TableName() string { return "trainers" }

func (m *TrainerModel) BeforeSave(tx *gorm.DB) error {
	m.TrainerFullName = strings.TrimSpace(m.TrainerFullName)
	if m.TrainerFullName == "" {
		return errors.New("trainer_full_name is required")
	}
	m.TrainerEmail = strings.ToLower(strings.TrimSpace(m.TrainerEmail))
	return nil
}
