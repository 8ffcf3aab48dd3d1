// file: internals/features/apprenticeship/reports/service/assembler.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	helper "azubiplan_backend/internals/helpers"
)

/* ============================================
   Report input
   A flat snapshot assembled by the controller. The assembler itself is pure:
   same snapshot, same report. Personal data beyond the trainee's name
   (birth date, compensation) never enters the input, so it cannot leak into
   the output.
============================================ */

type ReportInput struct {
	From        time.Time
	To          time.Time
	GeneratedAt time.Time

	PlanID          uuid.UUID
	PlanStartDate   time.Time
	PlanEndDate     time.Time
	OccupationTitle string
	TraineeName     string
	TrainerName     string

	Units       []UnitEntry
	Exams       []ExamEntry
	Activities  []ActivityEntry
	Attendances []AttendanceEntry
	WorkEntries []WorkEntry
}

type UnitEntry struct {
	Sequence  int       `json:"sequence"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"` // exclusive
	Status    string    `json:"status"`
}

type ExamEntry struct {
	Type        string     `json:"type"`
	TargetDate  time.Time  `json:"target_date"`
	Status      string     `json:"status"`
	LatestScore *float64   `json:"latest_score,omitempty"`
	LatestSatAt *time.Time `json:"latest_sat_at,omitempty"`
}

type ActivityEntry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Hours       float64   `json:"hours"`
}

type AttendanceEntry struct {
	Date    time.Time `json:"date"`
	Present bool      `json:"present"`
	Note    string    `json:"note,omitempty"`
}

type WorkEntry struct {
	Date          time.Time `json:"date"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	WorkedMinutes int       `json:"worked_minutes"`
}

/* ============================================
   Report output
============================================ */

type ReportTotals struct {
	ActivityHours  float64 `json:"activity_hours"`
	WorkedMinutes  int     `json:"worked_minutes"`
	SchoolDays     int     `json:"school_days"`
	SchoolAbsences int     `json:"school_absences"`
	UnitsCompleted int     `json:"units_completed"`
	UnitsTotal     int     `json:"units_total"`
}

type Report struct {
	PlanID          uuid.UUID `json:"plan_id"`
	OccupationTitle string    `json:"occupation_title"`
	TraineeName     string    `json:"trainee_name"`
	TrainerName     string    `json:"trainer_name"`

	PeriodFrom  time.Time `json:"period_from"`
	PeriodTo    time.Time `json:"period_to"`
	GeneratedAt time.Time `json:"generated_at"`

	Units       []UnitEntry       `json:"units"`
	Exams       []ExamEntry       `json:"exams"`
	Activities  []ActivityEntry   `json:"activities"`
	Attendances []AttendanceEntry `json:"attendances"`
	WorkEntries []WorkEntry       `json:"work_entries"`

	Totals ReportTotals `json:"totals"`
}

// Assemble builds the period report. Units are included when their window
// intersects [from, to]; dated entries when they fall inside it. Every
// section comes out sorted, so identical inputs always render identically.
func Assemble(in ReportInput) (Report, error) {
	if in.To.Before(in.From) {
		return Report{}, helper.ErrValidation("report period end %s precedes start %s",
			in.To.Format("2006-01-02"), in.From.Format("2006-01-02"))
	}

	rep := Report{
		PlanID:          in.PlanID,
		OccupationTitle: in.OccupationTitle,
		TraineeName:     in.TraineeName,
		TrainerName:     in.TrainerName,
		PeriodFrom:      in.From,
		PeriodTo:        in.To,
		GeneratedAt:     in.GeneratedAt,
		Units:           []UnitEntry{},
		Exams:           []ExamEntry{},
		Activities:      []ActivityEntry{},
		Attendances:     []AttendanceEntry{},
		WorkEntries:     []WorkEntry{},
	}

	for _, u := range in.Units {
		if intersects(u.StartDate, u.EndDate, in.From, in.To) {
			rep.Units = append(rep.Units, u)
		}
	}
	sort.Slice(rep.Units, func(i, j int) bool { return rep.Units[i].Sequence < rep.Units[j].Sequence })

	rep.Exams = append(rep.Exams, in.Exams...)
	sort.Slice(rep.Exams, func(i, j int) bool { return rep.Exams[i].TargetDate.Before(rep.Exams[j].TargetDate) })

	for _, a := range in.Activities {
		if inPeriod(a.Date, in.From, in.To) {
			rep.Activities = append(rep.Activities, a)
		}
	}
	sort.Slice(rep.Activities, func(i, j int) bool {
		if rep.Activities[i].Date.Equal(rep.Activities[j].Date) {
			return rep.Activities[i].Description < rep.Activities[j].Description
		}
		return rep.Activities[i].Date.Before(rep.Activities[j].Date)
	})

	for _, a := range in.Attendances {
		if inPeriod(a.Date, in.From, in.To) {
			rep.Attendances = append(rep.Attendances, a)
		}
	}
	sort.Slice(rep.Attendances, func(i, j int) bool { return rep.Attendances[i].Date.Before(rep.Attendances[j].Date) })

	for _, w := range in.WorkEntries {
		if inPeriod(w.Date, in.From, in.To) {
			rep.WorkEntries = append(rep.WorkEntries, w)
		}
	}
	sort.Slice(rep.WorkEntries, func(i, j int) bool {
		if rep.WorkEntries[i].Date.Equal(rep.WorkEntries[j].Date) {
			return rep.WorkEntries[i].StartAt.Before(rep.WorkEntries[j].StartAt)
		}
		return rep.WorkEntries[i].Date.Before(rep.WorkEntries[j].Date)
	})

	for _, a := range rep.Activities {
		rep.Totals.ActivityHours += a.Hours
	}
	for _, w := range rep.WorkEntries {
		rep.Totals.WorkedMinutes += w.WorkedMinutes
	}
	for _, a := range rep.Attendances {
		rep.Totals.SchoolDays++
		if !a.Present {
			rep.Totals.SchoolAbsences++
		}
	}
	rep.Totals.UnitsTotal = len(rep.Units)
	for _, u := range rep.Units {
		if u.Status == "completed" {
			rep.Totals.UnitsCompleted++
		}
	}

	return rep, nil
}

// intersects reports whether the half-open unit window [start, end) overlaps
// the closed period [from, to].
func intersects(start, end, from, to time.Time) bool {
	return start.Before(to.AddDate(0, 0, 1)) && end.After(from)
}

func inPeriod(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}
