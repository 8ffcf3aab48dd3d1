// file: internals/features/apprenticeship/examinations/service/workflow.go
package service

import (
	"encoding/json"
	"time"

	"azubiplan_backend/internals/features/apprenticeship/examinations/model"
	helper "azubiplan_backend/internals/helpers"
)

/* ============================================
   Section layout
============================================ */

type ExamSection struct {
	Name            string  `json:"name"`
	Modality        string  `json:"modality"` // written | oral | practical
	DurationMinutes int     `json:"duration_minutes"`
	Weight          float64 `json:"weight"`
}

func DecodeSections(raw []byte) ([]ExamSection, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var sections []ExamSection
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, helper.ErrInternal("examination sections are malformed: %v", err)
	}
	return sections, nil
}

/* ============================================
   Default blueprints
   Built at plan creation from the planner's exam targets. Section layouts
   follow the usual IHK split; overall weights sum to 1 across the final parts.
============================================ */

type ExamBlueprint struct {
	Type            string
	TargetDate      time.Time
	DurationMinutes int
	Sections        []ExamSection
	OverallWeight   float64
}

func DefaultBlueprint(examType string, targetDate time.Time) ExamBlueprint {
	switch examType {
	case model.ExamTypeInterim:
		return ExamBlueprint{
			Type:            examType,
			TargetDate:      targetDate,
			DurationMinutes: 120,
			Sections: []ExamSection{
				{Name: "Written fundamentals", Modality: "written", DurationMinutes: 120, Weight: 1},
			},
			OverallWeight: 0, // informational, does not count toward the final grade
		}
	case model.ExamTypeFinalPart1:
		return ExamBlueprint{
			Type:            examType,
			TargetDate:      targetDate,
			DurationMinutes: 90,
			Sections: []ExamSection{
				{Name: "Work order analysis", Modality: "written", DurationMinutes: 90, Weight: 1},
			},
			OverallWeight: 0.2,
		}
	default: // final_part_2
		return ExamBlueprint{
			Type:            model.ExamTypeFinalPart2,
			TargetDate:      targetDate,
			DurationMinutes: 300,
			Sections: []ExamSection{
				{Name: "Project documentation", Modality: "practical", DurationMinutes: 120, Weight: 0.5},
				{Name: "Specialist written exam", Modality: "written", DurationMinutes: 120, Weight: 0.3},
				{Name: "Technical discussion", Modality: "oral", DurationMinutes: 60, Weight: 0.2},
			},
			OverallWeight: 0.8,
		}
	}
}

/* ============================================
   State machine
   not_scheduled → registered → sat → passed | failed
   failed → registered (re-sit, unlimited)
   Every invalid transition fails loudly with the current and attempted state.
============================================ */

func invalidTransition(current, attempted string) error {
	return helper.ErrValidation("invalid examination transition: cannot move from %q to %q", current, attempted)
}

// Register transitions to registered. Valid from not_scheduled and failed
// only, and only while the registration deadline (target date minus the
// configured lead time) has not passed.
func Register(exam *model.ExaminationModel, registrationDate time.Time, leadDays int) error {
	switch exam.ExaminationStatus {
	case model.ExamStatusNotScheduled, model.ExamStatusFailed:
	default:
		return invalidTransition(exam.ExaminationStatus, model.ExamStatusRegistered)
	}

	deadline := exam.ExaminationTargetDate.AddDate(0, 0, -leadDays)
	if registrationDate.After(deadline) {
		return helper.ErrValidation(
			"registration deadline exceeded: %s examination requires registration by %s (target %s, lead time %d days)",
			exam.ExaminationType,
			deadline.Format("2006-01-02"),
			exam.ExaminationTargetDate.Format("2006-01-02"),
			leadDays,
		)
	}

	exam.ExaminationStatus = model.ExamStatusRegistered
	exam.ExaminationRegisteredAt = &registrationDate
	return nil
}

// RecordSat transitions registered → sat once the trainee has sat the exam.
func RecordSat(exam *model.ExaminationModel, satAt time.Time) error {
	if exam.ExaminationStatus != model.ExamStatusRegistered {
		return invalidTransition(exam.ExaminationStatus, model.ExamStatusSat)
	}
	exam.ExaminationStatus = model.ExamStatusSat
	exam.ExaminationSatAt = &satAt
	return nil
}

type Result struct {
	OverallScore  float64            `json:"overall_score"`
	SectionScores map[string]float64 `json:"section_scores"`
	Passed        bool               `json:"passed"`
}

// RecordResult computes the weighted overall score and transitions
// sat → passed|failed. A failed exam gets no automatic next attempt; the
// caller must Register again.
func RecordResult(exam *model.ExaminationModel, sectionScores map[string]float64, passingThreshold float64) (Result, error) {
	if exam.ExaminationStatus != model.ExamStatusSat {
		return Result{}, invalidTransition(exam.ExaminationStatus, model.ExamStatusPassed)
	}

	sections, err := DecodeSections(exam.ExaminationSections)
	if err != nil {
		return Result{}, err
	}
	if len(sections) == 0 {
		return Result{}, helper.ErrValidation("examination has no section layout")
	}

	var weightSum, weighted float64
	for _, s := range sections {
		score, ok := sectionScores[s.Name]
		if !ok {
			return Result{}, helper.ErrValidation("missing score for section %q", s.Name)
		}
		if score < 0 || score > 100 {
			return Result{}, helper.ErrValidation("score for section %q must be within 0..100", s.Name)
		}
		weightSum += s.Weight
		weighted += score * s.Weight
	}
	if weightSum <= 0 {
		return Result{}, helper.ErrValidation("examination section weights sum to zero")
	}

	overall := weighted / weightSum
	passed := overall >= passingThreshold

	if passed {
		exam.ExaminationStatus = model.ExamStatusPassed
	} else {
		exam.ExaminationStatus = model.ExamStatusFailed
	}

	return Result{
		OverallScore:  overall,
		SectionScores: sectionScores,
		Passed:        passed,
	}, nil
}
