// file: internals/features/records/attendance/model/attendance_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolAttendanceModel logs vocational school days. Absences carry a note.
type SchoolAttendanceModel struct {
	// ============ PK & Tenant ============
	SchoolAttendanceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_attendance_id" json:"school_attendance_id"`
	SchoolAttendanceCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:school_attendance_company_id" json:"school_attendance_company_id"`

	SchoolAttendanceTraineeID uuid.UUID `gorm:"type:uuid;not null;index;column:school_attendance_trainee_id" json:"school_attendance_trainee_id"`

	SchoolAttendanceDate    time.Time `gorm:"type:date;not null;index;column:school_attendance_date" json:"school_attendance_date"`
	SchoolAttendancePresent bool      `gorm:"not null;default:true;column:school_attendance_present" json:"school_attendance_present"`
	SchoolAttendanceNote    string    `gorm:"type:text;column:school_attendance_note" json:"school_attendance_note,omitempty"`

	// ============ Audit / Soft delete ============
	SchoolAttendanceCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:school_attendance_created_at" json:"school_attendance_created_at"`
	SchoolAttendanceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:school_attendance_updated_at" json:"school_attendance_updated_at"`
	SchoolAttendanceDeletedAt gorm.DeletedAt `gorm:"column:school_attendance_deleted_at;index" json:"school_attendance_deleted_at,omitempty"`
}

func (SchoolAttendanceModel) TableName() string { return "school_attendances" }

func (m *SchoolAttendanceModel) BeforeSave(tx *gorm.DB) error {
	if m.SchoolAttendanceDate.IsZero() {
		return errors.New("school_attendance_date is required")
	}
	return nil
}

// ActivityLogModel is one Berichtsheft entry: what the trainee worked on
// during a plan, dated and attributed to a scheduled unit when known.
type ActivityLogModel struct {
	// ============ PK & Tenant ============
	ActivityLogID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_log_id" json:"activity_log_id"`
	ActivityLogCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:activity_log_company_id" json:"activity_log_company_id"`

	ActivityLogTraineeID uuid.UUID  `gorm:"type:uuid;not null;index;column:activity_log_trainee_id" json:"activity_log_trainee_id"`
	ActivityLogPlanID    uuid.UUID  `gorm:"type:uuid;not null;index;column:activity_log_plan_id" json:"activity_log_plan_id"`
	ActivityLogUnitID    *uuid.UUID `gorm:"type:uuid;column:activity_log_unit_id" json:"activity_log_unit_id,omitempty"`

	ActivityLogDate        time.Time `gorm:"type:date;not null;index;column:activity_log_date" json:"activity_log_date"`
	ActivityLogDescription string    `gorm:"type:text;not null;column:activity_log_description" json:"activity_log_description"`
	ActivityLogHours       float64   `gorm:"type:numeric(5,2);not null;default:0;column:activity_log_hours" json:"activity_log_hours"`

	// ============ Audit / Soft delete ============
	ActivityLogCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:activity_log_created_at" json:"activity_log_created_at"`
	ActivityLogUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:activity_log_updated_at" json:"activity_log_updated_at"`
	ActivityLogDeletedAt gorm.DeletedAt `gorm:"column:activity_log_deleted_at;index" json:"activity_log_deleted_at,omitempty"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }

func (m *ActivityLogModel) BeforeSave(tx *gorm.DB) error {
	m.ActivityLogDescription = strings.TrimSpace(m.ActivityLogDescription)
	if m.ActivityLogDescription == "" {
		return errors.New("activity_log_description is required")
	}
	if m.ActivityLogHours < 0 {
		return errors.New("activity_log_hours must be >= 0")
	}
	return nil
}
