// file: internals/features/apprenticeship/reports/service/assembler_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "azubiplan_backend/internals/helpers"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleInput() ReportInput {
	return ReportInput{
		From:            date(2025, 5, 1),
		To:              date(2025, 5, 31),
		GeneratedAt:     date(2025, 6, 2),
		PlanID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		PlanStartDate:   date(2024, 9, 1),
		PlanEndDate:     date(2027, 9, 1),
		OccupationTitle: "Fachinformatiker Anwendungsentwicklung",
		TraineeName:     "Jona Schulz",
		TrainerName:     "R. Weber",
		Units: []UnitEntry{
			{Sequence: 2, Title: "Databases", StartDate: date(2025, 5, 10), EndDate: date(2025, 6, 10), Status: "active"},
			{Sequence: 1, Title: "Basics", StartDate: date(2025, 4, 1), EndDate: date(2025, 5, 10), Status: "completed"},
			{Sequence: 3, Title: "Networks", StartDate: date(2025, 7, 1), EndDate: date(2025, 8, 1), Status: "planned"},
		},
		Exams: []ExamEntry{
			{Type: "final_part_1", TargetDate: date(2026, 9, 1), Status: "not_scheduled"},
			{Type: "interim", TargetDate: date(2026, 3, 1), Status: "not_scheduled"},
		},
		Activities: []ActivityEntry{
			{Date: date(2025, 5, 12), Description: "SQL schema design", Hours: 6},
			{Date: date(2025, 4, 28), Description: "outside the period", Hours: 8},
			{Date: date(2025, 5, 5), Description: "code review", Hours: 2},
		},
		Attendances: []AttendanceEntry{
			{Date: date(2025, 5, 6), Present: true},
			{Date: date(2025, 5, 13), Present: false, Note: "sick"},
			{Date: date(2025, 6, 3), Present: true},
		},
		WorkEntries: []WorkEntry{
			{Date: date(2025, 5, 12), WorkedMinutes: 480},
			{Date: date(2025, 4, 30), WorkedMinutes: 420},
		},
	}
}

func TestAssemble_FiltersToPeriod(t *testing.T) {
	rep, err := Assemble(sampleInput())
	require.NoError(t, err)

	// Unit 3 starts after the period and is excluded; 1 and 2 intersect it.
	require.Len(t, rep.Units, 2)
	assert.Equal(t, 1, rep.Units[0].Sequence)
	assert.Equal(t, 2, rep.Units[1].Sequence)

	require.Len(t, rep.Activities, 2)
	assert.Equal(t, "code review", rep.Activities[0].Description)
	assert.Equal(t, "SQL schema design", rep.Activities[1].Description)

	require.Len(t, rep.Attendances, 2)
	assert.Equal(t, date(2025, 5, 6), rep.Attendances[0].Date)

	require.Len(t, rep.WorkEntries, 1)
	assert.Equal(t, date(2025, 5, 12), rep.WorkEntries[0].Date)
}

func TestAssemble_ExamsSortedByTargetDate(t *testing.T) {
	rep, err := Assemble(sampleInput())
	require.NoError(t, err)

	require.Len(t, rep.Exams, 2)
	assert.Equal(t, "interim", rep.Exams[0].Type)
	assert.Equal(t, "final_part_1", rep.Exams[1].Type)
}

func TestAssemble_Totals(t *testing.T) {
	rep, err := Assemble(sampleInput())
	require.NoError(t, err)

	assert.Equal(t, 8.0, rep.Totals.ActivityHours)
	assert.Equal(t, 480, rep.Totals.WorkedMinutes)
	assert.Equal(t, 2, rep.Totals.SchoolDays)
	assert.Equal(t, 1, rep.Totals.SchoolAbsences)
	assert.Equal(t, 2, rep.Totals.UnitsTotal)
	assert.Equal(t, 1, rep.Totals.UnitsCompleted)
}

func TestAssemble_InvalidPeriod(t *testing.T) {
	in := sampleInput()
	in.From = date(2025, 6, 1)
	in.To = date(2025, 5, 1)

	_, err := Assemble(in)

	require.Error(t, err)
	assert.Equal(t, helper.KindValidation, helper.KindOf(err))
}

func TestAssemble_SingleDayPeriod(t *testing.T) {
	in := sampleInput()
	in.From = date(2025, 5, 12)
	in.To = date(2025, 5, 12)

	rep, err := Assemble(in)
	require.NoError(t, err)

	require.Len(t, rep.Activities, 1)
	assert.Equal(t, "SQL schema design", rep.Activities[0].Description)
}

func TestAssemble_Deterministic(t *testing.T) {
	in := sampleInput()

	first, err := Assemble(in)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Assemble(in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAssemble_EmptyInputSections(t *testing.T) {
	in := sampleInput()
	in.Units = nil
	in.Exams = nil
	in.Activities = nil
	in.Attendances = nil
	in.WorkEntries = nil

	rep, err := Assemble(in)
	require.NoError(t, err)

	assert.Empty(t, rep.Units)
	assert.Empty(t, rep.Exams)
	assert.Empty(t, rep.Activities)
	assert.Empty(t, rep.Attendances)
	assert.Equal(t, ReportTotals{}, rep.Totals)
}
