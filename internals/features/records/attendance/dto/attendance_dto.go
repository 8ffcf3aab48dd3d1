// file: internals/features/records/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"azubiplan_backend/internals/features/records/attendance/model"
)

// =======================
// School attendance
// =======================

type SchoolAttendanceCreateDTO struct {
	SchoolAttendanceTraineeID uuid.UUID `json:"school_attendance_trainee_id" validate:"required"`
	SchoolAttendanceDate      time.Time `json:"school_attendance_date"       validate:"required"`
	SchoolAttendancePresent   *bool     `json:"school_attendance_present"    validate:"required"`
	SchoolAttendanceNote      string    `json:"school_attendance_note"       validate:"omitempty,max=2000"`
}

func (p *SchoolAttendanceCreateDTO) Normalize() {
	p.SchoolAttendanceNote = strings.TrimSpace(p.SchoolAttendanceNote)
}

func (p *SchoolAttendanceCreateDTO) ToModel(companyID uuid.UUID) model.SchoolAttendanceModel {
	return model.SchoolAttendanceModel{
		SchoolAttendanceCompanyID: companyID,
		SchoolAttendanceTraineeID: p.SchoolAttendanceTraineeID,
		SchoolAttendanceDate:      p.SchoolAttendanceDate,
		SchoolAttendancePresent:   p.SchoolAttendancePresent == nil || *p.SchoolAttendancePresent,
		SchoolAttendanceNote:      p.SchoolAttendanceNote,
	}
}

type SchoolAttendanceResponseDTO struct {
	SchoolAttendanceID        uuid.UUID `json:"school_attendance_id"`
	SchoolAttendanceTraineeID uuid.UUID `json:"school_attendance_trainee_id"`
	SchoolAttendanceDate      time.Time `json:"school_attendance_date"`
	SchoolAttendancePresent   bool      `json:"school_attendance_present"`
	SchoolAttendanceNote      string    `json:"school_attendance_note,omitempty"`
	SchoolAttendanceCreatedAt time.Time `json:"school_attendance_created_at"`
}

func FromSchoolAttendanceModel(ent model.SchoolAttendanceModel) SchoolAttendanceResponseDTO {
	return SchoolAttendanceResponseDTO{
		SchoolAttendanceID:        ent.SchoolAttendanceID,
		SchoolAttendanceTraineeID: ent.SchoolAttendanceTraineeID,
		SchoolAttendanceDate:      ent.SchoolAttendanceDate,
		SchoolAttendancePresent:   ent.SchoolAttendancePresent,
		SchoolAttendanceNote:      ent.SchoolAttendanceNote,
		SchoolAttendanceCreatedAt: ent.SchoolAttendanceCreatedAt,
	}
}

func FromSchoolAttendanceModels(list []model.SchoolAttendanceModel) []SchoolAttendanceResponseDTO {
	out := make([]SchoolAttendanceResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromSchoolAttendanceModel(it))
	}
	return out
}

// =======================
// Activity log
// =======================

type ActivityLogCreateDTO struct {
	ActivityLogTraineeID   uuid.UUID  `json:"activity_log_trainee_id"  validate:"required"`
	ActivityLogPlanID      uuid.UUID  `json:"activity_log_plan_id"     validate:"required"`
	ActivityLogUnitID      *uuid.UUID `json:"activity_log_unit_id,omitempty"`
	ActivityLogDate        time.Time  `json:"activity_log_date"        validate:"required"`
	ActivityLogDescription string     `json:"activity_log_description" validate:"required,min=3"`
	ActivityLogHours       float64    `json:"activity_log_hours"       validate:"gte=0,lte=24"`
}

func (p *ActivityLogCreateDTO) Normalize() {
	p.ActivityLogDescription = strings.TrimSpace(p.ActivityLogDescription)
}

func (p *ActivityLogCreateDTO) ToModel(companyID uuid.UUID) model.ActivityLogModel {
	return model.ActivityLogModel{
		ActivityLogCompanyID:   companyID,
		ActivityLogTraineeID:   p.ActivityLogTraineeID,
		ActivityLogPlanID:      p.ActivityLogPlanID,
		ActivityLogUnitID:      p.ActivityLogUnitID,
		ActivityLogDate:        p.ActivityLogDate,
		ActivityLogDescription: p.ActivityLogDescription,
		ActivityLogHours:       p.ActivityLogHours,
	}
}

type ActivityLogResponseDTO struct {
	ActivityLogID          uuid.UUID  `json:"activity_log_id"`
	ActivityLogTraineeID   uuid.UUID  `json:"activity_log_trainee_id"`
	ActivityLogPlanID      uuid.UUID  `json:"activity_log_plan_id"`
	ActivityLogUnitID      *uuid.UUID `json:"activity_log_unit_id,omitempty"`
	ActivityLogDate        time.Time  `json:"activity_log_date"`
	ActivityLogDescription string     `json:"activity_log_description"`
	ActivityLogHours       float64    `json:"activity_log_hours"`
	ActivityLogCreatedAt   time.Time  `json:"activity_log_created_at"`
}

func FromActivityLogModel(ent model.ActivityLogModel) ActivityLogResponseDTO {
	return ActivityLogResponseDTO{
		ActivityLogID:          ent.ActivityLogID,
		ActivityLogTraineeID:   ent.ActivityLogTraineeID,
		ActivityLogPlanID:      ent.ActivityLogPlanID,
		ActivityLogUnitID:      ent.ActivityLogUnitID,
		ActivityLogDate:        ent.ActivityLogDate,
		ActivityLogDescription: ent.ActivityLogDescription,
		ActivityLogHours:       ent.ActivityLogHours,
		ActivityLogCreatedAt:   ent.ActivityLogCreatedAt,
	}
}

func FromActivityLogModels(list []model.ActivityLogModel) []ActivityLogResponseDTO {
	out := make([]ActivityLogResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromActivityLogModel(it))
	}
	return out
}
