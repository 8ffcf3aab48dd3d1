// file: internals/features/apprenticeship/training_plans/service/planner.go
package service

import (
	"time"

	"github.com/google/uuid"

	curriculumService "azubiplan_backend/internals/features/apprenticeship/curriculum/service"
	examModel "azubiplan_backend/internals/features/apprenticeship/examinations/model"
	planModel "azubiplan_backend/internals/features/apprenticeship/training_plans/model"
)

// Nominal working day used to convert allotted hours to calendar days.
const hoursPerWorkingDay = 8

type PlannedUnit struct {
	CurriculumUnitID uuid.UUID
	Sequence         int
	Title            string
	StartDate        time.Time // inclusive
	EndDate          time.Time // exclusive
}

type ExamTarget struct {
	Type       string
	TargetDate time.Time
}

type Schedule struct {
	StartDate   time.Time
	EndDate     time.Time
	Units       []PlannedUnit
	ExamTargets []ExamTarget
}

// BuildSchedule projects an occupation's curriculum onto the calendar.
// Pure function of (catalog entry, start date): each unit gets a contiguous
// half-open window of allotted_hours/8 days directly after its predecessor,
// the first one starting on the plan start date. An occupation with zero
// units yields a valid plan with no scheduled units.
func BuildSchedule(entry curriculumService.CatalogEntry, start time.Time) Schedule {
	start = dateOnly(start)

	sched := Schedule{
		StartDate: start,
		EndDate:   start.AddDate(0, entry.DurationMonths, 0),
		Units:     make([]PlannedUnit, 0, len(entry.Units)),
	}

	cursor := start
	for _, u := range entry.Units {
		days := daysForHours(u.AllottedHours)
		end := cursor.AddDate(0, 0, days)
		sched.Units = append(sched.Units, PlannedUnit{
			CurriculumUnitID: u.UnitID,
			Sequence:         u.Sequence,
			Title:            u.Title,
			StartDate:        cursor,
			EndDate:          end,
		})
		cursor = end
	}

	sched.ExamTargets = examTargets(start, sched.EndDate, entry.DurationMonths)
	return sched
}

// examTargets derives the three qualifying examination dates from the plan
// window: interim at the halfway point, final part 1 at two thirds, final
// part 2 at the plan end.
func examTargets(start, end time.Time, durationMonths int) []ExamTarget {
	return []ExamTarget{
		{Type: examModel.ExamTypeInterim, TargetDate: start.AddDate(0, durationMonths/2, 0)},
		{Type: examModel.ExamTypeFinalPart1, TargetDate: start.AddDate(0, (durationMonths*2)/3, 0)},
		{Type: examModel.ExamTypeFinalPart2, TargetDate: end},
	}
}

func daysForHours(hours int) int {
	if hours <= 0 {
		return 0
	}
	return (hours + hoursPerWorkingDay - 1) / hoursPerWorkingDay
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DeriveUnitStatus recomputes a unit's time-based status. Completed is
// sticky: recorded progress is never rolled back by the clock.
func DeriveUnitStatus(current string, start, end, now time.Time) string {
	if current == planModel.ScheduledUnitStatusCompleted {
		return current
	}
	switch {
	case !now.Before(end):
		return planModel.ScheduledUnitStatusOverdue
	case !now.Before(start):
		return planModel.ScheduledUnitStatusActive
	default:
		return planModel.ScheduledUnitStatusPlanned
	}
}
