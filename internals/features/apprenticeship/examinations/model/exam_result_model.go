// file: internals/features/apprenticeship/examinations/model/exam_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExamResultModel is one recorded attempt. Re-sits append new rows; the
// attempt counter keeps the history readable without joins.
type ExamResultModel struct {
	// ============ PK & Tenant ============
	ExamResultID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_result_id" json:"exam_result_id"`
	ExamResultCompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:exam_result_company_id" json:"exam_result_company_id"`

	ExamResultExaminationID uuid.UUID `gorm:"type:uuid;not null;index;column:exam_result_examination_id" json:"exam_result_examination_id"`

	ExamResultAttempt      int            `gorm:"type:integer;not null;default:1;column:exam_result_attempt" json:"exam_result_attempt"`
	ExamResultOverallScore float64        `gorm:"type:numeric(5,2);not null;column:exam_result_overall_score" json:"exam_result_overall_score"`
	// {"section name": score, ...}
	ExamResultSectionScores datatypes.JSON `gorm:"type:jsonb;column:exam_result_section_scores" json:"exam_result_section_scores"`
	ExamResultPassed        bool           `gorm:"not null;column:exam_result_passed" json:"exam_result_passed"`
	ExamResultRecordedAt    time.Time      `gorm:"type:timestamptz;not null;column:exam_result_recorded_at" json:"exam_result_recorded_at"`

	// ============ Audit / Soft delete ============
	ExamResultCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:exam_result_created_at" json:"exam_result_created_at"`
	ExamResultDeletedAt gorm.DeletedAt `gorm:"column:exam_result_deleted_at;index" json:"exam_result_deleted_at,omitempty"`
}

func (ExamResultModel) TableName() string { return "exam_results" }
