// file: internals/features/apprenticeship/curriculum/controller/curriculum_unit_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "azubiplan_backend/internals/features/apprenticeship/curriculum/dto"
	model "azubiplan_backend/internals/features/apprenticeship/curriculum/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

type CurriculumUnitController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCurriculumUnitController(db *gorm.DB, v *validator.Validate) *CurriculumUnitController {
	if v == nil {
		v = validator.New()
	}
	return &CurriculumUnitController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin only)
   POST /a/curriculum-units
============================================ */

func (ctl *CurriculumUnitController) Create(c *fiber.Ctx) error {
	var p dto.CurriculumUnitCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	// parent occupation must exist within the tenant
	var occCnt int64
	if err := ctl.DB.Model(&model.OccupationModel{}).
		Where("occupation_company_id = ? AND occupation_id = ?", companyID, p.CurriculumUnitOccupationID).
		Count(&occCnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to check occupation")
	}
	if occCnt == 0 {
		return httpErr(c, fiber.StatusNotFound, "occupation not found")
	}

	// one unit per sequence slot
	var seqCnt int64
	if err := ctl.DB.Model(&model.CurriculumUnitModel{}).
		Where("curriculum_unit_company_id = ? AND curriculum_unit_occupation_id = ? AND curriculum_unit_sequence = ?",
			companyID, p.CurriculumUnitOccupationID, p.CurriculumUnitSequence).
		Count(&seqCnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to check sequence")
	}
	if seqCnt > 0 {
		return httpErr(c, fiber.StatusConflict, "sequence number already taken for this occupation")
	}

	ent := p.ToModel(companyID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to create curriculum unit")
	}
	return helper.JsonCreated(c, "curriculum unit created", dto.FromCurriculumUnitModel(ent))
}

/* ============================================
   LIST by occupation
   GET /occupations/:id/curriculum-units
============================================ */

func (ctl *CurriculumUnitController) ListByOccupation(c *fiber.Ctx) error {
	occID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	var list []model.CurriculumUnitModel
	if err := ctl.DB.
		Where("curriculum_unit_company_id = ? AND curriculum_unit_occupation_id = ?", companyID, occID).
		Order("curriculum_unit_sequence ASC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list curriculum units")
	}
	return helper.JsonOK(c, "curriculum units", dto.FromCurriculumUnitModels(list))
}

/* ============================================
   PATCH (admin only)
   PATCH /a/curriculum-units/:id
============================================ */

func (ctl *CurriculumUnitController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	var ent model.CurriculumUnitModel
	if err := ctl.DB.
		Where("curriculum_unit_company_id = ? AND curriculum_unit_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "curriculum unit not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load curriculum unit")
	}

	var p dto.CurriculumUnitUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to update curriculum unit")
	}
	return helper.JsonUpdated(c, "curriculum unit updated", dto.FromCurriculumUnitModel(ent))
}

/* ============================================
   DELETE (soft) — admin only
   DELETE /a/curriculum-units/:id
============================================ */

func (ctl *CurriculumUnitController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	var ent model.CurriculumUnitModel
	if err := ctl.DB.
		Where("curriculum_unit_company_id = ? AND curriculum_unit_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "curriculum unit not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load curriculum unit")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to delete curriculum unit")
	}
	return helper.JsonDeleted(c, "curriculum unit deleted", fiber.Map{"curriculum_unit_id": id})
}
