// file: internals/features/apprenticeship/training_plans/service/planner_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	curriculumService "azubiplan_backend/internals/features/apprenticeship/curriculum/service"
	examModel "azubiplan_backend/internals/features/apprenticeship/examinations/model"
	planModel "azubiplan_backend/internals/features/apprenticeship/training_plans/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entryWithUnits(durationMonths int, hours ...int) curriculumService.CatalogEntry {
	entry := curriculumService.CatalogEntry{
		OccupationID:     uuid.New(),
		Code:             "FIAE",
		Title:            "Fachinformatiker Anwendungsentwicklung",
		DurationMonths:   durationMonths,
		PassingThreshold: 50,
	}
	for i, h := range hours {
		entry.Units = append(entry.Units, curriculumService.CatalogUnit{
			UnitID:        uuid.New(),
			Sequence:      i + 1,
			Title:         "Unit",
			AllottedHours: h,
			TargetYear:    1,
		})
	}
	return entry
}

func TestBuildScheduleScenario(t *testing.T) {
	// 2 units of 40h and 80h, plan starts 2024-01-01:
	// unit 1 window [2024-01-01, 2024-01-06), unit 2 window [2024-01-06, 2024-01-16).
	entry := entryWithUnits(36, 40, 80)
	sched := BuildSchedule(entry, date(2024, time.January, 1))

	require.Len(t, sched.Units, 2)
	assert.Equal(t, date(2024, time.January, 1), sched.Units[0].StartDate)
	assert.Equal(t, date(2024, time.January, 6), sched.Units[0].EndDate)
	assert.Equal(t, date(2024, time.January, 6), sched.Units[1].StartDate)
	assert.Equal(t, date(2024, time.January, 16), sched.Units[1].EndDate)

	assert.Equal(t, date(2024, time.January, 1), sched.StartDate)
	assert.Equal(t, date(2027, time.January, 1), sched.EndDate)
}

func TestBuildScheduleContiguity(t *testing.T) {
	entry := entryWithUnits(36, 40, 80, 120, 60, 7, 33)
	sched := BuildSchedule(entry, date(2024, time.September, 1))

	require.Len(t, sched.Units, len(entry.Units))
	for i, u := range sched.Units {
		assert.Equal(t, entry.Units[i].Sequence, u.Sequence, "catalog order preserved")
		assert.True(t, u.EndDate.After(u.StartDate), "window must be non-empty")
		if i > 0 {
			assert.Equal(t, sched.Units[i-1].EndDate, u.StartDate, "windows must be contiguous")
		}
	}
	assert.Equal(t, sched.StartDate, sched.Units[0].StartDate)
}

func TestBuildScheduleZeroUnits(t *testing.T) {
	entry := entryWithUnits(24)
	sched := BuildSchedule(entry, date(2024, time.February, 1))

	assert.Empty(t, sched.Units)
	assert.Equal(t, date(2026, time.February, 1), sched.EndDate)
	require.Len(t, sched.ExamTargets, 3)
}

func TestBuildScheduleExamTargets(t *testing.T) {
	entry := entryWithUnits(36, 40)
	sched := BuildSchedule(entry, date(2024, time.January, 1))

	require.Len(t, sched.ExamTargets, 3)
	byType := map[string]time.Time{}
	for _, et := range sched.ExamTargets {
		byType[et.Type] = et.TargetDate
	}
	assert.Equal(t, date(2025, time.July, 1), byType[examModel.ExamTypeInterim])     // +18 months
	assert.Equal(t, date(2026, time.January, 1), byType[examModel.ExamTypeFinalPart1]) // +24 months
	assert.Equal(t, date(2027, time.January, 1), byType[examModel.ExamTypeFinalPart2]) // plan end
}

func TestDaysForHours(t *testing.T) {
	cases := []struct {
		hours int
		days  int
	}{
		{40, 5},
		{80, 10},
		{8, 1},
		{1, 1},
		{9, 2},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.days, daysForHours(tc.hours), "hours=%d", tc.hours)
	}
}

func TestDeriveUnitStatus(t *testing.T) {
	start := date(2024, time.March, 1)
	end := date(2024, time.March, 11)

	cases := []struct {
		name    string
		current string
		now     time.Time
		want    string
	}{
		{"before window", planModel.ScheduledUnitStatusPlanned, date(2024, time.February, 1), planModel.ScheduledUnitStatusPlanned},
		{"inside window", planModel.ScheduledUnitStatusPlanned, date(2024, time.March, 5), planModel.ScheduledUnitStatusActive},
		{"on start day", planModel.ScheduledUnitStatusPlanned, start, planModel.ScheduledUnitStatusActive},
		{"past window", planModel.ScheduledUnitStatusActive, date(2024, time.April, 1), planModel.ScheduledUnitStatusOverdue},
		{"on end day", planModel.ScheduledUnitStatusActive, end, planModel.ScheduledUnitStatusOverdue},
		{"completed is sticky", planModel.ScheduledUnitStatusCompleted, date(2024, time.April, 1), planModel.ScheduledUnitStatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveUnitStatus(tc.current, start, end, tc.now))
		})
	}
}
