// file: internals/features/apprenticeship/examinations/service/workflow_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"azubiplan_backend/internals/features/apprenticeship/examinations/model"
	helper "azubiplan_backend/internals/helpers"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func examWithSections(t *testing.T, status string, target time.Time, sections []ExamSection) *model.ExaminationModel {
	t.Helper()
	raw, err := json.Marshal(sections)
	require.NoError(t, err)
	return &model.ExaminationModel{
		ExaminationType:            model.ExamTypeFinalPart2,
		ExaminationTargetDate:      target,
		ExaminationDurationMinutes: 300,
		ExaminationStatus:          status,
		ExaminationSections:        datatypes.JSON(raw),
	}
}

func TestRegister(t *testing.T) {
	target := date(2025, time.June, 15)

	t.Run("from not_scheduled before deadline", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusNotScheduled, target, nil)
		err := Register(exam, date(2025, time.April, 1), 42)
		require.NoError(t, err)
		assert.Equal(t, model.ExamStatusRegistered, exam.ExaminationStatus)
		require.NotNil(t, exam.ExaminationRegisteredAt)
	})

	t.Run("re-sit from failed", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusFailed, target, nil)
		err := Register(exam, date(2025, time.April, 1), 42)
		require.NoError(t, err)
		assert.Equal(t, model.ExamStatusRegistered, exam.ExaminationStatus)
	})

	t.Run("past the lead-time deadline", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusNotScheduled, target, nil)
		// deadline = 2025-05-04 with 42 lead days
		err := Register(exam, date(2025, time.May, 5), 42)
		require.Error(t, err)
		assert.Equal(t, helper.KindValidation, helper.KindOf(err))
		assert.Equal(t, model.ExamStatusNotScheduled, exam.ExaminationStatus)
	})

	t.Run("registration exactly on the deadline is allowed", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusNotScheduled, target, nil)
		err := Register(exam, date(2025, time.May, 4), 42)
		require.NoError(t, err)
	})

	t.Run("from passed is rejected", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusPassed, target, nil)
		err := Register(exam, date(2025, time.April, 1), 42)
		require.Error(t, err)
		assert.Equal(t, helper.KindValidation, helper.KindOf(err))
		assert.Contains(t, err.Error(), model.ExamStatusPassed)
		assert.Contains(t, err.Error(), model.ExamStatusRegistered)
	})
}

func TestRecordSat(t *testing.T) {
	target := date(2025, time.June, 15)

	exam := examWithSections(t, model.ExamStatusRegistered, target, nil)
	require.NoError(t, RecordSat(exam, date(2025, time.June, 15)))
	assert.Equal(t, model.ExamStatusSat, exam.ExaminationStatus)

	exam = examWithSections(t, model.ExamStatusNotScheduled, target, nil)
	err := RecordSat(exam, date(2025, time.June, 15))
	require.Error(t, err)
	assert.Equal(t, helper.KindValidation, helper.KindOf(err))
}

func TestRecordResult(t *testing.T) {
	target := date(2025, time.June, 15)
	sections := []ExamSection{
		{Name: "Project documentation", Modality: "practical", DurationMinutes: 120, Weight: 0.5},
		{Name: "Specialist written exam", Modality: "written", DurationMinutes: 120, Weight: 0.3},
		{Name: "Technical discussion", Modality: "oral", DurationMinutes: 60, Weight: 0.2},
	}

	t.Run("weighted pass", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusSat, target, sections)
		res, err := RecordResult(exam, map[string]float64{
			"Project documentation":   80,
			"Specialist written exam": 60,
			"Technical discussion":    50,
		}, 50)
		require.NoError(t, err)
		// 80*0.5 + 60*0.3 + 50*0.2 = 68
		assert.InDelta(t, 68.0, res.OverallScore, 0.0001)
		assert.True(t, res.Passed)
		assert.Equal(t, model.ExamStatusPassed, exam.ExaminationStatus)
	})

	t.Run("weighted fail needs fresh registration", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusSat, target, sections)
		res, err := RecordResult(exam, map[string]float64{
			"Project documentation":   40,
			"Specialist written exam": 30,
			"Technical discussion":    20,
		}, 50)
		require.NoError(t, err)
		assert.False(t, res.Passed)
		assert.Equal(t, model.ExamStatusFailed, exam.ExaminationStatus)

		// the failed exam may be re-registered
		require.NoError(t, Register(exam, date(2025, time.April, 1), 42))
	})

	t.Run("from not_scheduled is rejected", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusNotScheduled, target, sections)
		_, err := RecordResult(exam, map[string]float64{}, 50)
		require.Error(t, err)
		assert.Equal(t, helper.KindValidation, helper.KindOf(err))
	})

	t.Run("missing section score", func(t *testing.T) {
		exam := examWithSections(t, model.ExamStatusSat, target, sections)
		_, err := RecordResult(exam, map[string]float64{
			"Project documentation": 80,
		}, 50)
		require.Error(t, err)
		assert.Equal(t, helper.KindValidation, helper.KindOf(err))
	})
}
