// file: internals/features/apprenticeship/curriculum/dto/occupation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"azubiplan_backend/internals/features/apprenticeship/curriculum/model"
)

// =======================
// Request DTO
// =======================

type OccupationCreateDTO struct {
	OccupationCode             string   `json:"occupation_code"              validate:"required,min=2,max=24"`
	OccupationTitle            string   `json:"occupation_title"             validate:"required,min=3"`
	OccupationDurationMonths   int      `json:"occupation_duration_months"   validate:"required,min=1,max=60"`
	OccupationPassingThreshold *float64 `json:"occupation_passing_threshold,omitempty" validate:"omitempty,gte=0,lte=100"`
	// pointer: distinguish "not sent" from "false"
	OccupationIsActive *bool `json:"occupation_is_active,omitempty"`
}

type OccupationUpdateDTO struct {
	OccupationTitle            *string  `json:"occupation_title,omitempty"             validate:"omitempty,min=3"`
	OccupationDurationMonths   *int     `json:"occupation_duration_months,omitempty"   validate:"omitempty,min=1,max=60"`
	OccupationPassingThreshold *float64 `json:"occupation_passing_threshold,omitempty" validate:"omitempty,gte=0,lte=100"`
	OccupationIsActive         *bool    `json:"occupation_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type OccupationResponseDTO struct {
	OccupationID               uuid.UUID  `json:"occupation_id"`
	OccupationCompanyID        uuid.UUID  `json:"occupation_company_id"`
	OccupationCode             string     `json:"occupation_code"`
	OccupationTitle            string     `json:"occupation_title"`
	OccupationDurationMonths   int        `json:"occupation_duration_months"`
	OccupationPassingThreshold *float64   `json:"occupation_passing_threshold,omitempty"`
	OccupationIsActive         bool       `json:"occupation_is_active"`
	OccupationCreatedAt        time.Time  `json:"occupation_created_at"`
	OccupationUpdatedAt        time.Time  `json:"occupation_updated_at"`
	OccupationUnitCount        int        `json:"occupation_unit_count,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *OccupationCreateDTO) Normalize() {
	p.OccupationCode = strings.ToUpper(strings.TrimSpace(p.OccupationCode))
	p.OccupationTitle = strings.TrimSpace(p.OccupationTitle)
}

func (p *OccupationCreateDTO) ToModel(companyID uuid.UUID) model.OccupationModel {
	isActive := true
	if p.OccupationIsActive != nil {
		isActive = *p.OccupationIsActive
	}
	return model.OccupationModel{
		OccupationCompanyID:        companyID,
		OccupationCode:             p.OccupationCode,
		OccupationTitle:            p.OccupationTitle,
		OccupationDurationMonths:   p.OccupationDurationMonths,
		OccupationPassingThreshold: p.OccupationPassingThreshold,
		OccupationIsActive:         isActive,
	}
}

func (u *OccupationUpdateDTO) ApplyUpdates(ent *model.OccupationModel) {
	if u.OccupationTitle != nil {
		ent.OccupationTitle = strings.TrimSpace(*u.OccupationTitle)
	}
	if u.OccupationDurationMonths != nil {
		ent.OccupationDurationMonths = *u.OccupationDurationMonths
	}
	if u.OccupationPassingThreshold != nil {
		ent.OccupationPassingThreshold = u.OccupationPassingThreshold
	}
	if u.OccupationIsActive != nil {
		ent.OccupationIsActive = *u.OccupationIsActive
	}
}

// Mapper entity -> response
func FromOccupationModel(ent model.OccupationModel) OccupationResponseDTO {
	return OccupationResponseDTO{
		OccupationID:               ent.OccupationID,
		OccupationCompanyID:        ent.OccupationCompanyID,
		OccupationCode:             ent.OccupationCode,
		OccupationTitle:            ent.OccupationTitle,
		OccupationDurationMonths:   ent.OccupationDurationMonths,
		OccupationPassingThreshold: ent.OccupationPassingThreshold,
		OccupationIsActive:         ent.OccupationIsActive,
		OccupationCreatedAt:        ent.OccupationCreatedAt,
		OccupationUpdatedAt:        ent.OccupationUpdatedAt,
	}
}

func FromOccupationModels(list []model.OccupationModel) []OccupationResponseDTO {
	out := make([]OccupationResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromOccupationModel(it))
	}
	return out
}
