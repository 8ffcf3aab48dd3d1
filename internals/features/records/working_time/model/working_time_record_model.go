// file: internals/features/records/working_time/model/working_time_record_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingTimeRecordModel is one logged work period for a trainee. Malformed
// periods (end before start) are stored as-is: the compliance checker reports
// them as record-keeping violations instead of rejecting them at the door,
// so the audit trail keeps what was actually submitted.
type WorkingTimeRecordModel struct {
	// ============ PK & Tenant ============
	WorkingTimeRecordID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:working_time_record_id" json:"working_time_record_id"`
	WorkingTimeRecordCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:working_time_record_company_id" json:"working_time_record_company_id"`

	WorkingTimeRecordTraineeID uuid.UUID `gorm:"type:uuid;not null;index;column:working_time_record_trainee_id" json:"working_time_record_trainee_id"`

	WorkingTimeRecordDate    time.Time `gorm:"type:date;not null;index;column:working_time_record_date" json:"working_time_record_date"`
	WorkingTimeRecordStartAt time.Time `gorm:"type:timestamptz;not null;column:working_time_record_start_at" json:"working_time_record_start_at"`
	WorkingTimeRecordEndAt   time.Time `gorm:"type:timestamptz;not null;column:working_time_record_end_at" json:"working_time_record_end_at"`

	WorkingTimeRecordBreakMinutes int `gorm:"type:integer;not null;default:0;column:working_time_record_break_minutes" json:"working_time_record_break_minutes"`

	WorkingTimeRecordNote string `gorm:"type:text;column:working_time_record_note" json:"working_time_record_note,omitempty"`

	// ============ Audit / Soft delete ============
	WorkingTimeRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:working_time_record_created_at" json:"working_time_record_created_at"`
	WorkingTimeRecordUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:working_time_record_updated_at" json:"working_time_record_updated_at"`
	WorkingTimeRecordDeletedAt gorm.DeletedAt `gorm:"column:working_time_record_deleted_at;index" json:"working_time_record_deleted_at,omitempty"`
}

func (WorkingTimeRecordModel) TableName() string { return "working_time_records" }

func (m *WorkingTimeRecordModel) BeforeSave(tx *gorm.DB) error {
	if m.WorkingTimeRecordDate.IsZero() {
		return errors.New("working_time_record_date is required")
	}
	if m.WorkingTimeRecordBreakMinutes < 0 {
		return errors.New("working_time_record_break_minutes must be >= 0")
	}
	return nil
}

// Malformed reports whether the period cannot yield a positive duration.
func (m *WorkingTimeRecordModel) Malformed() bool {
	return !m.WorkingTimeRecordEndAt.After(m.WorkingTimeRecordStartAt)
}

// WorkedMinutes returns the net logged minutes, zero for malformed periods.
func (m *WorkingTimeRecordModel) WorkedMinutes() int {
	if m.Malformed() {
		return 0
	}
	minutes := int(m.WorkingTimeRecordEndAt.Sub(m.WorkingTimeRecordStartAt).Minutes()) - m.WorkingTimeRecordBreakMinutes
	if minutes < 0 {
		return 0
	}
	return minutes
}
