// file: internals/features/apprenticeship/curriculum/dto/curriculum_unit_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"azubiplan_backend/internals/features/apprenticeship/curriculum/model"
)

// =======================
// Request DTO
// =======================

type CurriculumUnitCreateDTO struct {
	CurriculumUnitOccupationID  uuid.UUID `json:"curriculum_unit_occupation_id"  validate:"required"`
	CurriculumUnitSequence      int       `json:"curriculum_unit_sequence"       validate:"required,min=1"`
	CurriculumUnitTitle         string    `json:"curriculum_unit_title"          validate:"required,min=3"`
	CurriculumUnitAllottedHours int       `json:"curriculum_unit_allotted_hours" validate:"required,min=1"`
	CurriculumUnitTargetYear    int       `json:"curriculum_unit_target_year"    validate:"required,min=1,max=5"`
	CurriculumUnitObjectives    []string  `json:"curriculum_unit_objectives,omitempty"`
	CurriculumUnitTopics        []string  `json:"curriculum_unit_topics,omitempty"`
	CurriculumUnitCompetencies  []string  `json:"curriculum_unit_competencies,omitempty"`
}

type CurriculumUnitUpdateDTO struct {
	CurriculumUnitTitle         *string  `json:"curriculum_unit_title,omitempty"          validate:"omitempty,min=3"`
	CurriculumUnitAllottedHours *int     `json:"curriculum_unit_allotted_hours,omitempty" validate:"omitempty,min=1"`
	CurriculumUnitTargetYear    *int     `json:"curriculum_unit_target_year,omitempty"    validate:"omitempty,min=1,max=5"`
	CurriculumUnitObjectives    []string `json:"curriculum_unit_objectives,omitempty"`
	CurriculumUnitTopics        []string `json:"curriculum_unit_topics,omitempty"`
	CurriculumUnitCompetencies  []string `json:"curriculum_unit_competencies,omitempty"`
}

// =======================
// Response DTO
// =======================

type CurriculumUnitResponseDTO struct {
	CurriculumUnitID            uuid.UUID `json:"curriculum_unit_id"`
	CurriculumUnitOccupationID  uuid.UUID `json:"curriculum_unit_occupation_id"`
	CurriculumUnitSequence      int       `json:"curriculum_unit_sequence"`
	CurriculumUnitTitle         string    `json:"curriculum_unit_title"`
	CurriculumUnitAllottedHours int       `json:"curriculum_unit_allotted_hours"`
	CurriculumUnitTargetYear    int       `json:"curriculum_unit_target_year"`
	CurriculumUnitObjectives    []string  `json:"curriculum_unit_objectives,omitempty"`
	CurriculumUnitTopics        []string  `json:"curriculum_unit_topics,omitempty"`
	CurriculumUnitCompetencies  []string  `json:"curriculum_unit_competencies,omitempty"`
	CurriculumUnitCreatedAt     time.Time `json:"curriculum_unit_created_at"`
	CurriculumUnitUpdatedAt     time.Time `json:"curriculum_unit_updated_at"`
}

// =======================
// Helpers
// =======================

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (p *CurriculumUnitCreateDTO) Normalize() {
	p.CurriculumUnitTitle = strings.TrimSpace(p.CurriculumUnitTitle)
	p.CurriculumUnitObjectives = trimAll(p.CurriculumUnitObjectives)
	p.CurriculumUnitTopics = trimAll(p.CurriculumUnitTopics)
	p.CurriculumUnitCompetencies = trimAll(p.CurriculumUnitCompetencies)
}

func (p *CurriculumUnitCreateDTO) ToModel(companyID uuid.UUID) model.CurriculumUnitModel {
	return model.CurriculumUnitModel{
		CurriculumUnitCompanyID:     companyID,
		CurriculumUnitOccupationID:  p.CurriculumUnitOccupationID,
		CurriculumUnitSequence:      p.CurriculumUnitSequence,
		CurriculumUnitTitle:         p.CurriculumUnitTitle,
		CurriculumUnitAllottedHours: p.CurriculumUnitAllottedHours,
		CurriculumUnitTargetYear:    p.CurriculumUnitTargetYear,
		CurriculumUnitObjectives:    pq.StringArray(p.CurriculumUnitObjectives),
		CurriculumUnitTopics:        pq.StringArray(p.CurriculumUnitTopics),
		CurriculumUnitCompetencies:  pq.StringArray(p.CurriculumUnitCompetencies),
	}
}

func (u *CurriculumUnitUpdateDTO) ApplyUpdates(ent *model.CurriculumUnitModel) {
	if u.CurriculumUnitTitle != nil {
		ent.CurriculumUnitTitle = strings.TrimSpace(*u.CurriculumUnitTitle)
	}
	if u.CurriculumUnitAllottedHours != nil {
		ent.CurriculumUnitAllottedHours = *u.CurriculumUnitAllottedHours
	}
	if u.CurriculumUnitTargetYear != nil {
		ent.CurriculumUnitTargetYear = *u.CurriculumUnitTargetYear
	}
	if u.CurriculumUnitObjectives != nil {
		ent.CurriculumUnitObjectives = pq.StringArray(trimAll(u.CurriculumUnitObjectives))
	}
	if u.CurriculumUnitTopics != nil {
		ent.CurriculumUnitTopics = pq.StringArray(trimAll(u.CurriculumUnitTopics))
	}
	if u.CurriculumUnitCompetencies != nil {
		ent.CurriculumUnitCompetencies = pq.StringArray(trimAll(u.CurriculumUnitCompetencies))
	}
}

func FromCurriculumUnitModel(ent model.CurriculumUnitModel) CurriculumUnitResponseDTO {
	return CurriculumUnitResponseDTO{
		CurriculumUnitID:            ent.CurriculumUnitID,
		CurriculumUnitOccupationID:  ent.CurriculumUnitOccupationID,
		CurriculumUnitSequence:      ent.CurriculumUnitSequence,
		CurriculumUnitTitle:         ent.CurriculumUnitTitle,
		CurriculumUnitAllottedHours: ent.CurriculumUnitAllottedHours,
		CurriculumUnitTargetYear:    ent.CurriculumUnitTargetYear,
		CurriculumUnitObjectives:    ent.CurriculumUnitObjectives,
		CurriculumUnitTopics:        ent.CurriculumUnitTopics,
		CurriculumUnitCompetencies:  ent.CurriculumUnitCompetencies,
		CurriculumUnitCreatedAt:     ent.CurriculumUnitCreatedAt,
		CurriculumUnitUpdatedAt:     ent.CurriculumUnitUpdatedAt,
	}
}

func FromCurriculumUnitModels(list []model.CurriculumUnitModel) []CurriculumUnitResponseDTO {
	out := make([]CurriculumUnitResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromCurriculumUnitModel(it))
	}
	return out
}
