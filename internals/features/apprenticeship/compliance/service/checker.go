// file: internals/features/apprenticeship/compliance/service/checker.go
package service

import (
	"fmt"
	"sort"
	"time"

	"azubiplan_backend/internals/configs"
	examModel "azubiplan_backend/internals/features/apprenticeship/examinations/model"
)

/* ============================================
   Violation model
   A check never errors on bad training data: everything it finds comes back
   as a violation. Errors are reserved for missing inputs upstream.
============================================ */

// Violation categories.
const (
	CategoryWorkingTime          = "working_time"
	CategoryTrainerCertification = "trainer_certification"
	CategoryExamRegistration     = "exam_registration"
	CategoryMinimumWage          = "minimum_wage"
	CategoryRecordKeeping        = "record_keeping"
)

type Violation struct {
	Category string     `json:"category"`
	Message  string     `json:"message"`
	Date     *time.Time `json:"date,omitempty"`
}

type Recommendation struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type CheckResult struct {
	Compliant       bool             `json:"compliant"`
	CheckedAt       time.Time        `json:"checked_at"`
	Violations      []Violation      `json:"violations"`
	Recommendations []Recommendation `json:"recommendations"`
}

/* ============================================
   Check input
   A flat snapshot of everything the rules need. The controller assembles it
   from the database; tests build it by hand.
============================================ */

type WorkPeriod struct {
	Date         time.Time
	StartAt      time.Time
	EndAt        time.Time
	BreakMinutes int
}

func (p WorkPeriod) Malformed() bool {
	return !p.EndAt.After(p.StartAt)
}

func (p WorkPeriod) WorkedMinutes() int {
	if p.Malformed() {
		return 0
	}
	minutes := int(p.EndAt.Sub(p.StartAt).Minutes()) - p.BreakMinutes
	if minutes < 0 {
		return 0
	}
	return minutes
}

type Certification struct {
	Title      string
	IssuedAt   time.Time
	ValidUntil *time.Time
}

type ExamState struct {
	Type       string
	TargetDate time.Time
	Status     string
}

type CheckInput struct {
	Now    time.Time
	Policy configs.CompliancePolicy

	PlanStartDate time.Time
	PlanEndDate   time.Time

	TraineeDateOfBirth       time.Time
	MonthlyCompensationCents int64

	WorkPeriods    []WorkPeriod
	Certifications []Certification
	Exams          []ExamState
}

// Daily working-time ceilings (ArbZG / JArbSchG). Minors are capped at eight
// hours, adults at ten.
const (
	maxDailyMinutesMinor = 8 * 60
	maxDailyMinutesAdult = 10 * 60
)

// Check runs every rule against the snapshot and returns the full violation
// list. Pure function of its input: same snapshot, same result.
func Check(in CheckInput) CheckResult {
	res := CheckResult{
		CheckedAt:       in.Now,
		Violations:      []Violation{},
		Recommendations: []Recommendation{},
	}

	checkWorkingTime(in, &res)
	checkTrainerCertification(in, &res)
	checkExamRegistration(in, &res)
	checkMinimumWage(in, &res)
	checkRecordKeeping(in, &res)

	res.Compliant = len(res.Violations) == 0
	return res
}

// checkWorkingTime sums the net minutes logged per calendar day and applies
// two independent ceilings: the eight-hour youth-protection limit when the
// trainee was under 18 on the record date, and the ten-hour statutory cap
// regardless of age. One day can trigger both. Age is taken on the day of
// the record, not at check time: a trainee who turned 18 mid-month gets the
// adult limit only from the birthday on.
func checkWorkingTime(in CheckInput, res *CheckResult) {
	type dayTotal struct {
		date    time.Time
		minutes int
	}
	byDay := map[string]*dayTotal{}
	for _, p := range in.WorkPeriods {
		if p.Malformed() {
			continue
		}
		key := p.Date.Format("2006-01-02")
		if byDay[key] == nil {
			byDay[key] = &dayTotal{date: p.Date}
		}
		byDay[key].minutes += p.WorkedMinutes()
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		d := byDay[k]
		date := d.date
		if !in.TraineeDateOfBirth.IsZero() &&
			ageAt(in.TraineeDateOfBirth, d.date) < 18 &&
			d.minutes > maxDailyMinutesMinor {
			res.Violations = append(res.Violations, Violation{
				Category: CategoryWorkingTime,
				Message: fmt.Sprintf("worked %dh%02dm on %s, minors may work at most 8h per day",
					d.minutes/60, d.minutes%60, k),
				Date: &date,
			})
		}
		if d.minutes > maxDailyMinutesAdult {
			res.Violations = append(res.Violations, Violation{
				Category: CategoryWorkingTime,
				Message: fmt.Sprintf("worked %dh%02dm on %s, the statutory cap is 10h per day",
					d.minutes/60, d.minutes%60, k),
				Date: &date,
			})
		}
	}
}

// checkTrainerCertification requires at least one certificate valid at check
// time. Missing and expired collapse into one violation; an expired
// certificate additionally yields a recertification recommendation.
func checkTrainerCertification(in CheckInput, res *CheckResult) {
	var newestExpired *Certification
	for i := range in.Certifications {
		c := &in.Certifications[i]
		if certValidOn(*c, in.Now) {
			return
		}
		if c.ValidUntil != nil && c.ValidUntil.Before(in.Now) {
			if newestExpired == nil || c.ValidUntil.After(*newestExpired.ValidUntil) {
				newestExpired = c
			}
		}
	}

	if newestExpired != nil {
		until := *newestExpired.ValidUntil
		res.Violations = append(res.Violations, Violation{
			Category: CategoryTrainerCertification,
			Message: fmt.Sprintf("trainer certification %q expired on %s",
				newestExpired.Title, until.Format("2006-01-02")),
			Date: &until,
		})
		res.Recommendations = append(res.Recommendations, Recommendation{
			Category: CategoryTrainerCertification,
			Message:  fmt.Sprintf("schedule recertification for %q", newestExpired.Title),
		})
		return
	}

	res.Violations = append(res.Violations, Violation{
		Category: CategoryTrainerCertification,
		Message:  "no trainer certification on file",
	})
	res.Recommendations = append(res.Recommendations, Recommendation{
		Category: CategoryTrainerCertification,
		Message:  "record a valid trainer aptitude certificate",
	})
}

// checkExamRegistration flags examinations whose target date has passed while
// the exam was never registered.
func checkExamRegistration(in CheckInput, res *CheckResult) {
	for _, e := range in.Exams {
		if e.Status != examModel.ExamStatusNotScheduled {
			continue
		}
		if in.Now.After(e.TargetDate) {
			target := e.TargetDate
			res.Violations = append(res.Violations, Violation{
				Category: CategoryExamRegistration,
				Message: fmt.Sprintf("%s examination target date %s passed without registration",
					e.Type, target.Format("2006-01-02")),
				Date: &target,
			})
		}
	}
}

// checkMinimumWage compares the monthly gross against the statutory table for
// the current training year.
func checkMinimumWage(in CheckInput, res *CheckResult) {
	if len(in.Policy.MinimumWageCentsByYear) == 0 {
		return
	}
	year := trainingYear(in.PlanStartDate, in.Now)
	idx := year - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(in.Policy.MinimumWageCentsByYear) {
		idx = len(in.Policy.MinimumWageCentsByYear) - 1
	}
	minimum := in.Policy.MinimumWageCentsByYear[idx]
	if in.MonthlyCompensationCents < minimum {
		res.Violations = append(res.Violations, Violation{
			Category: CategoryMinimumWage,
			Message: fmt.Sprintf("monthly compensation %.2f EUR is below the year-%d minimum of %.2f EUR",
				float64(in.MonthlyCompensationCents)/100, year, float64(minimum)/100),
		})
	}
}

// checkRecordKeeping flags every logged period whose end does not lie after
// its start. Such records are stored but never counted toward working time.
func checkRecordKeeping(in CheckInput, res *CheckResult) {
	for _, p := range in.WorkPeriods {
		if !p.Malformed() {
			continue
		}
		date := p.Date
		res.Violations = append(res.Violations, Violation{
			Category: CategoryRecordKeeping,
			Message: fmt.Sprintf("working time record on %s has end before start",
				p.Date.Format("2006-01-02")),
			Date: &date,
		})
	}
}

func ageAt(dateOfBirth, on time.Time) int {
	years := on.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(years, 0, 0).After(on) {
		years--
	}
	return years
}

func certValidOn(c Certification, on time.Time) bool {
	if on.Before(c.IssuedAt) {
		return false
	}
	if c.ValidUntil == nil {
		return true
	}
	return !on.After(*c.ValidUntil)
}

// trainingYear is 1-based: the first twelve months of the plan are year one.
func trainingYear(planStart, now time.Time) int {
	if now.Before(planStart) {
		return 1
	}
	year := 1
	for !planStart.AddDate(year, 0, 0).After(now) {
		year++
	}
	return year
}
