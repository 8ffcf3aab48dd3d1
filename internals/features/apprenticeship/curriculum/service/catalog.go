// file: internals/features/apprenticeship/curriculum/service/catalog.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"azubiplan_backend/internals/features/apprenticeship/curriculum/model"
	helper "azubiplan_backend/internals/helpers"
)

/* ============================================
   Catalog value types
   The planner never touches GORM models or ambient lookup tables; it gets an
   immutable CatalogEntry value and nothing else.
============================================ */

type CatalogUnit struct {
	UnitID        uuid.UUID
	Sequence      int
	Title         string
	AllottedHours int
	TargetYear    int
}

type CatalogEntry struct {
	OccupationID     uuid.UUID
	Code             string
	Title            string
	DurationMonths   int
	PassingThreshold float64
	Units            []CatalogUnit // sorted by sequence
}

// LoadCatalogEntry resolves one occupation plus its ordered unit sequence for
// a tenant. defaultThreshold applies when the occupation carries no override.
func LoadCatalogEntry(db *gorm.DB, companyID, occupationID uuid.UUID, defaultThreshold float64) (CatalogEntry, error) {
	var occ model.OccupationModel
	if err := db.
		Where("occupation_company_id = ? AND occupation_id = ?", companyID, occupationID).
		First(&occ).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CatalogEntry{}, helper.ErrNotFound("occupation %s not found", occupationID)
		}
		return CatalogEntry{}, helper.ErrInternal("occupation lookup failed: %v", err)
	}

	var units []model.CurriculumUnitModel
	if err := db.
		Where("curriculum_unit_company_id = ? AND curriculum_unit_occupation_id = ?", companyID, occupationID).
		Order("curriculum_unit_sequence ASC").
		Find(&units).Error; err != nil {
		return CatalogEntry{}, helper.ErrInternal("curriculum unit lookup failed: %v", err)
	}

	threshold := defaultThreshold
	if occ.OccupationPassingThreshold != nil {
		threshold = *occ.OccupationPassingThreshold
	}

	entry := CatalogEntry{
		OccupationID:     occ.OccupationID,
		Code:             occ.OccupationCode,
		Title:            occ.OccupationTitle,
		DurationMonths:   occ.OccupationDurationMonths,
		PassingThreshold: threshold,
		Units:            make([]CatalogUnit, 0, len(units)),
	}
	for _, u := range units {
		entry.Units = append(entry.Units, CatalogUnit{
			UnitID:        u.CurriculumUnitID,
			Sequence:      u.CurriculumUnitSequence,
			Title:         u.CurriculumUnitTitle,
			AllottedHours: u.CurriculumUnitAllottedHours,
			TargetYear:    u.CurriculumUnitTargetYear,
		})
	}
	return entry, nil
}
