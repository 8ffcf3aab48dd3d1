// file: internals/features/records/working_time/dto/working_time_record_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"azubiplan_backend/internals/features/records/working_time/model"
)

// =======================
// Request DTO
// =======================

type WorkingTimeRecordCreateDTO struct {
	WorkingTimeRecordTraineeID    uuid.UUID `json:"working_time_record_trainee_id"    validate:"required"`
	WorkingTimeRecordDate         time.Time `json:"working_time_record_date"          validate:"required"`
	WorkingTimeRecordStartAt      time.Time `json:"working_time_record_start_at"      validate:"required"`
	WorkingTimeRecordEndAt        time.Time `json:"working_time_record_end_at"        validate:"required"`
	WorkingTimeRecordBreakMinutes int       `json:"working_time_record_break_minutes" validate:"gte=0"`
	WorkingTimeRecordNote         string    `json:"working_time_record_note"          validate:"omitempty,max=2000"`
}

func (p *WorkingTimeRecordCreateDTO) Normalize() {
	p.WorkingTimeRecordNote = strings.TrimSpace(p.WorkingTimeRecordNote)
}

func (p *WorkingTimeRecordCreateDTO) ToModel(companyID uuid.UUID) model.WorkingTimeRecordModel {
	return model.WorkingTimeRecordModel{
		WorkingTimeRecordCompanyID:    companyID,
		WorkingTimeRecordTraineeID:    p.WorkingTimeRecordTraineeID,
		WorkingTimeRecordDate:         p.WorkingTimeRecordDate,
		WorkingTimeRecordStartAt:      p.WorkingTimeRecordStartAt,
		WorkingTimeRecordEndAt:        p.WorkingTimeRecordEndAt,
		WorkingTimeRecordBreakMinutes: p.WorkingTimeRecordBreakMinutes,
		WorkingTimeRecordNote:         p.WorkingTimeRecordNote,
	}
}

// =======================
// Response DTO
// =======================

type WorkingTimeRecordResponseDTO struct {
	WorkingTimeRecordID           uuid.UUID `json:"working_time_record_id"`
	WorkingTimeRecordTraineeID    uuid.UUID `json:"working_time_record_trainee_id"`
	WorkingTimeRecordDate         time.Time `json:"working_time_record_date"`
	WorkingTimeRecordStartAt      time.Time `json:"working_time_record_start_at"`
	WorkingTimeRecordEndAt        time.Time `json:"working_time_record_end_at"`
	WorkingTimeRecordBreakMinutes int       `json:"working_time_record_break_minutes"`
	WorkingTimeRecordNote         string    `json:"working_time_record_note,omitempty"`
	WorkingTimeRecordWorkedMins   int       `json:"working_time_record_worked_minutes"`
	WorkingTimeRecordMalformed    bool      `json:"working_time_record_malformed"`
	WorkingTimeRecordCreatedAt    time.Time `json:"working_time_record_created_at"`
}

func FromWorkingTimeRecordModel(ent model.WorkingTimeRecordModel) WorkingTimeRecordResponseDTO {
	return WorkingTimeRecordResponseDTO{
		WorkingTimeRecordID:           ent.WorkingTimeRecordID,
		WorkingTimeRecordTraineeID:    ent.WorkingTimeRecordTraineeID,
		WorkingTimeRecordDate:         ent.WorkingTimeRecordDate,
		WorkingTimeRecordStartAt:      ent.WorkingTimeRecordStartAt,
		WorkingTimeRecordEndAt:        ent.WorkingTimeRecordEndAt,
		WorkingTimeRecordBreakMinutes: ent.WorkingTimeRecordBreakMinutes,
		WorkingTimeRecordNote:         ent.WorkingTimeRecordNote,
		WorkingTimeRecordWorkedMins:   ent.WorkedMinutes(),
		WorkingTimeRecordMalformed:    ent.Malformed(),
		WorkingTimeRecordCreatedAt:    ent.WorkingTimeRecordCreatedAt,
	}
}

func FromWorkingTimeRecordModels(list []model.WorkingTimeRecordModel) []WorkingTimeRecordResponseDTO {
	out := make([]WorkingTimeRecordResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromWorkingTimeRecordModel(it))
	}
	return out
}
