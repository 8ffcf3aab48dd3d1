// file: internals/features/apprenticeship/compliance/service/checker_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azubiplan_backend/internals/configs"
	examModel "azubiplan_backend/internals/features/apprenticeship/examinations/model"
)

func testPolicy() configs.CompliancePolicy {
	return configs.CompliancePolicy{
		ExamRegistrationLeadDays: 42,
		ExamPassingThreshold:     50.0,
		WorkingTimeLookbackDays:  30,
		MinimumWageCentsByYear:   []int64{64900, 76600, 87600, 90900},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// compliantInput is a baseline that passes every check. Individual tests
// mutate exactly one aspect.
func compliantInput() CheckInput {
	validUntil := date(2030, 1, 1)
	return CheckInput{
		Now:                      date(2025, 6, 2),
		Policy:                   testPolicy(),
		PlanStartDate:            date(2024, 9, 1),
		PlanEndDate:              date(2027, 9, 1),
		TraineeDateOfBirth:       date(2005, 3, 15), // 20 at check time
		MonthlyCompensationCents: 80000,
		WorkPeriods: []WorkPeriod{
			{
				Date:         date(2025, 5, 20),
				StartAt:      time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
				EndAt:        time.Date(2025, 5, 20, 16, 30, 0, 0, time.UTC),
				BreakMinutes: 30,
			},
		},
		Certifications: []Certification{
			{Title: "AEVO", IssuedAt: date(2020, 1, 1), ValidUntil: &validUntil},
		},
		Exams: []ExamState{
			{Type: examModel.ExamTypeInterim, TargetDate: date(2026, 3, 1), Status: examModel.ExamStatusNotScheduled},
			{Type: examModel.ExamTypeFinalPart1, TargetDate: date(2026, 9, 1), Status: examModel.ExamStatusNotScheduled},
			{Type: examModel.ExamTypeFinalPart2, TargetDate: date(2027, 9, 1), Status: examModel.ExamStatusNotScheduled},
		},
	}
}

func TestCheck_CompliantInputYieldsNoViolations(t *testing.T) {
	res := Check(compliantInput())

	assert.True(t, res.Compliant)
	assert.Empty(t, res.Violations)
	assert.Empty(t, res.Recommendations)
}

func TestCheck_CompliantIffNoViolations(t *testing.T) {
	ok := Check(compliantInput())
	assert.Equal(t, len(ok.Violations) == 0, ok.Compliant)

	bad := compliantInput()
	bad.MonthlyCompensationCents = 0
	res := Check(bad)
	assert.Equal(t, len(res.Violations) == 0, res.Compliant)
	assert.False(t, res.Compliant)
}

/* ============================================
   Working time
============================================ */

func TestCheckWorkingTime_AdultBoundaries(t *testing.T) {
	day := date(2025, 5, 20)

	cases := []struct {
		name      string
		minutes   int
		violation bool
	}{
		{"exactly ten hours is allowed", 600, false},
		{"ten hours one minute is flagged", 601, true},
		{"eight hours is allowed", 480, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := compliantInput()
			in.WorkPeriods = []WorkPeriod{{
				Date:    day,
				StartAt: time.Date(2025, 5, 20, 7, 0, 0, 0, time.UTC),
				EndAt:   time.Date(2025, 5, 20, 7, 0, 0, 0, time.UTC).Add(time.Duration(tc.minutes) * time.Minute),
			}}

			res := Check(in)

			if tc.violation {
				require.Len(t, res.Violations, 1)
				assert.Equal(t, CategoryWorkingTime, res.Violations[0].Category)
			} else {
				assert.Empty(t, res.Violations)
			}
		})
	}
}

func TestCheckWorkingTime_MinorBoundaries(t *testing.T) {
	in := compliantInput()
	in.TraineeDateOfBirth = date(2008, 1, 1) // 17 on the record date

	// Exactly eight hours: fine for a minor.
	in.WorkPeriods = []WorkPeriod{{
		Date:    date(2025, 5, 20),
		StartAt: time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 5, 20, 16, 0, 0, 0, time.UTC),
	}}
	assert.Empty(t, Check(in).Violations)

	// One minute over.
	in.WorkPeriods[0].EndAt = time.Date(2025, 5, 20, 16, 1, 0, 0, time.UTC)
	res := Check(in)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryWorkingTime, res.Violations[0].Category)
}

func TestCheckWorkingTime_AgeTakenOnRecordDate(t *testing.T) {
	in := compliantInput()
	in.TraineeDateOfBirth = date(2007, 5, 21) // turns 18 on 2025-05-21

	nineHours := func(day time.Time) WorkPeriod {
		return WorkPeriod{
			Date:    day,
			StartAt: time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, time.UTC),
			EndAt:   time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, time.UTC),
		}
	}

	// Nine hours the day before the 18th birthday: minor limit applies.
	in.WorkPeriods = []WorkPeriod{nineHours(date(2025, 5, 20))}
	require.Len(t, Check(in).Violations, 1)

	// Same nine hours on the birthday: adult limit applies.
	in.WorkPeriods = []WorkPeriod{nineHours(date(2025, 5, 21))}
	assert.Empty(t, Check(in).Violations)
}

func TestCheckWorkingTime_MultiplePeriodsPerDayAreSummed(t *testing.T) {
	in := compliantInput()
	day := date(2025, 5, 20)
	in.WorkPeriods = []WorkPeriod{
		{
			Date:    day,
			StartAt: time.Date(2025, 5, 20, 6, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
		},
		{
			Date:    day,
			StartAt: time.Date(2025, 5, 20, 13, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC),
		},
	}

	// 6h + 5h = 11h on one day.
	res := Check(in)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryWorkingTime, res.Violations[0].Category)
}

func TestCheckWorkingTime_MinorOverBothLimitsGetsTwoViolations(t *testing.T) {
	in := compliantInput()
	in.TraineeDateOfBirth = date(2008, 1, 1)
	in.WorkPeriods = []WorkPeriod{{
		Date:    date(2025, 5, 20),
		StartAt: time.Date(2025, 5, 20, 7, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC), // eleven hours
	}}

	res := Check(in)

	require.Len(t, res.Violations, 2)
	assert.Equal(t, CategoryWorkingTime, res.Violations[0].Category)
	assert.Equal(t, CategoryWorkingTime, res.Violations[1].Category)
	assert.Contains(t, res.Violations[0].Message, "minors")
	assert.Contains(t, res.Violations[1].Message, "statutory cap")
}

/* ============================================
   Trainer certification
============================================ */

func TestCheckTrainerCertification_ExpiredYesterdayIsExactlyOneViolation(t *testing.T) {
	in := compliantInput()
	yesterday := in.Now.AddDate(0, 0, -1)
	in.Certifications = []Certification{
		{Title: "AEVO", IssuedAt: date(2020, 1, 1), ValidUntil: &yesterday},
	}

	res := Check(in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryTrainerCertification, res.Violations[0].Category)
	require.Len(t, res.Recommendations, 1)
	assert.Contains(t, res.Recommendations[0].Message, "recertification")
}

func TestCheckTrainerCertification_ValidUntilTodayIsStillValid(t *testing.T) {
	in := compliantInput()
	today := in.Now
	in.Certifications = []Certification{
		{Title: "AEVO", IssuedAt: date(2020, 1, 1), ValidUntil: &today},
	}

	assert.Empty(t, Check(in).Violations)
}

func TestCheckTrainerCertification_NoneOnFile(t *testing.T) {
	in := compliantInput()
	in.Certifications = nil

	res := Check(in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryTrainerCertification, res.Violations[0].Category)
	assert.Contains(t, res.Violations[0].Message, "no trainer certification")
	require.Len(t, res.Recommendations, 1)
}

func TestCheckTrainerCertification_OpenEndedNeverExpires(t *testing.T) {
	in := compliantInput()
	in.Certifications = []Certification{
		{Title: "Meisterbrief", IssuedAt: date(2015, 6, 1)},
	}

	assert.Empty(t, Check(in).Violations)
}

/* ============================================
   Exam registration
============================================ */

func TestCheckExamRegistration_TargetPassedUnregistered(t *testing.T) {
	in := compliantInput()
	in.Exams = []ExamState{
		{Type: examModel.ExamTypeInterim, TargetDate: date(2025, 3, 1), Status: examModel.ExamStatusNotScheduled},
	}

	res := Check(in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryExamRegistration, res.Violations[0].Category)
	assert.Contains(t, res.Violations[0].Message, "interim")
}

func TestCheckExamRegistration_RegisteredExamIsNotFlagged(t *testing.T) {
	in := compliantInput()
	in.Exams = []ExamState{
		{Type: examModel.ExamTypeInterim, TargetDate: date(2025, 3, 1), Status: examModel.ExamStatusRegistered},
		{Type: examModel.ExamTypeFinalPart1, TargetDate: date(2025, 1, 1), Status: examModel.ExamStatusPassed},
	}

	assert.Empty(t, Check(in).Violations)
}

func TestCheckExamRegistration_FutureTargetIsNotFlagged(t *testing.T) {
	in := compliantInput()
	in.Exams = []ExamState{
		{Type: examModel.ExamTypeFinalPart2, TargetDate: date(2027, 9, 1), Status: examModel.ExamStatusNotScheduled},
	}

	assert.Empty(t, Check(in).Violations)
}

/* ============================================
   Minimum wage
============================================ */

func TestCheckMinimumWage_BelowTableIsFlagged(t *testing.T) {
	in := compliantInput() // within year 1 of the plan
	in.MonthlyCompensationCents = 64899

	res := Check(in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryMinimumWage, res.Violations[0].Category)
}

func TestCheckMinimumWage_ExactlyAtMinimumIsCompliant(t *testing.T) {
	in := compliantInput()
	in.MonthlyCompensationCents = 64900

	assert.Empty(t, Check(in).Violations)
}

func TestCheckMinimumWage_SecondTrainingYearUsesSecondRow(t *testing.T) {
	in := compliantInput()
	in.Now = date(2025, 10, 1) // thirteen months into the plan
	in.MonthlyCompensationCents = 70000

	res := Check(in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryMinimumWage, res.Violations[0].Category)
	assert.Contains(t, res.Violations[0].Message, "year-2")
}

func TestCheckMinimumWage_YearBeyondTableClampsToLastRow(t *testing.T) {
	in := compliantInput()
	in.Now = date(2029, 1, 1) // past the four-row table
	in.MonthlyCompensationCents = 90900
	in.Exams = nil

	assert.Empty(t, Check(in).Violations)
}

/* ============================================
   Record keeping
============================================ */

func TestCheckRecordKeeping_EndBeforeStartIsFlaggedNotCounted(t *testing.T) {
	in := compliantInput()
	day := date(2025, 5, 20)
	in.WorkPeriods = []WorkPeriod{{
		Date:    day,
		StartAt: time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
	}}

	res := Check(in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryRecordKeeping, res.Violations[0].Category)
}

func TestCheckRecordKeeping_ZeroLengthPeriodIsMalformed(t *testing.T) {
	in := compliantInput()
	at := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	in.WorkPeriods = []WorkPeriod{{Date: date(2025, 5, 20), StartAt: at, EndAt: at}}

	res := Check(in)

	require.Len(t, res.Violations, 1)
	assert.Equal(t, CategoryRecordKeeping, res.Violations[0].Category)
}

/* ============================================
   Determinism
============================================ */

func TestCheck_SameInputSameResult(t *testing.T) {
	in := compliantInput()
	in.MonthlyCompensationCents = 0
	in.Certifications = nil
	in.WorkPeriods = append(in.WorkPeriods, WorkPeriod{
		Date:    date(2025, 5, 22),
		StartAt: time.Date(2025, 5, 22, 6, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 5, 22, 18, 0, 0, 0, time.UTC),
	})

	first := Check(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Check(in))
	}
}
