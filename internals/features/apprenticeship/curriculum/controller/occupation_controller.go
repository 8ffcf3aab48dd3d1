// file: internals/features/apprenticeship/curriculum/controller/occupation_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "azubiplan_backend/internals/features/apprenticeship/curriculum/dto"
	model "azubiplan_backend/internals/features/apprenticeship/curriculum/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type OccupationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOccupationController(db *gorm.DB, v *validator.Validate) *OccupationController {
	if v == nil {
		v = validator.New()
	}
	return &OccupationController{DB: db, Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

/* ============================================
   CREATE (admin only)
   POST /a/occupations
============================================ */

func (ctl *OccupationController) Create(c *fiber.Ctx) error {
	var p dto.OccupationCreateDTO
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

	// uniqueness of occupation code per tenant
	var cnt int64
	if err := ctl.DB.Model(&model.OccupationModel{}).
		Where("occupation_company_id = ? AND occupation_code = ?", companyID, p.OccupationCode).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to check occupation code")
	}
	if cnt > 0 {
		return httpErr(c, fiber.StatusConflict, "occupation code already in use")
	}

	ent := p.ToModel(companyID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to create occupation")
	}
	return helper.JsonCreated(c, "occupation created", dto.FromOccupationModel(ent))
}

/* ============================================
   LIST
   GET /occupations?active=&q=
============================================ */

func (ctl *OccupationController) List(c *fiber.Ctx) error {
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.OccupationModel{}).
		Where("occupation_company_id = ?", companyID)

	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("occupation_is_active = ?", active == "true" || active == "1")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(occupation_title) LIKE ? OR LOWER(occupation_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count occupations")
	}

	var list []model.OccupationModel
	if err := q.Order("occupation_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list occupations")
	}

	return helper.JsonList(c, "occupations", dto.FromOccupationModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL (incl. ordered curriculum units)
   GET /occupations/:id
============================================ */

func (ctl *OccupationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	var ent model.OccupationModel
	if err := ctl.DB.
		Where("occupation_company_id = ? AND occupation_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "occupation not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load occupation")
	}

	var units []model.CurriculumUnitModel
	if err := ctl.DB.
		Where("curriculum_unit_company_id = ? AND curriculum_unit_occupation_id = ?", companyID, id).
		Order("curriculum_unit_sequence ASC").
		Find(&units).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to load curriculum units")
	}

	resp := dto.FromOccupationModel(ent)
	resp.OccupationUnitCount = len(units)
	return helper.JsonOK(c, "occupation", fiber.Map{
		"occupation":       resp,
		"curriculum_units": dto.FromCurriculumUnitModels(units),
	})
}

/* ============================================
   PATCH (admin only)
   PATCH /a/occupations/:id
============================================ */

func (ctl *OccupationController) Patch(c *fiber.Ctx) error {
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

	var ent model.OccupationModel
	if err := ctl.DB.
		Where("occupation_company_id = ? AND occupation_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "occupation not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load occupation")
	}

	var p dto.OccupationUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to update occupation")
	}
	return helper.JsonUpdated(c, "occupation updated", dto.FromOccupationModel(ent))
}

/* ============================================
   DELETE (soft) — admin only
   DELETE /a/occupations/:id
============================================ */

func (ctl *OccupationController) Delete(c *fiber.Ctx) error {
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

	var ent model.OccupationModel
	if err := ctl.DB.
		Where("occupation_company_id = ? AND occupation_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "occupation not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load occupation")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to delete occupation")
	}
	return helper.JsonDeleted(c, "occupation deleted", fiber.Map{"occupation_id": id})
}
