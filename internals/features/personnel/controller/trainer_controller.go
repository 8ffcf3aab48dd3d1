// file: internals/features/personnel/controller/trainer_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "azubiplan_backend/internals/features/personnel/dto"
	model "azubiplan_backend/internals/features/personnel/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

type TrainerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTrainerController(db *gorm.DB, v *validator.Validate) *TrainerController {
	if v == nil {
		v = validator.New()
	}
	return &TrainerController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin only)
   POST /a/trainers
============================================ */

func (ctl *TrainerController) Create(c *fiber.Ctx) error {
	var p dto.TrainerCreateDTO
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

	ent := p.ToModel(companyID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to create trainer")
	}
	return helper.JsonCreated(c, "trainer created", dto.FromTrainerModel(ent))
}

/* ============================================
   LIST
   GET /trainers?active=
============================================ */

func (ctl *TrainerController) List(c *fiber.Ctx) error {
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TrainerModel{}).
		Where("trainer_company_id = ?", companyID)

	if active := c.Query("active"); active != "" {
		q = q.Where("trainer_is_active = ?", active == "true" || active == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count trainers")
	}

	var list []model.TrainerModel
	if err := q.Order("trainer_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list trainers")
	}

	return helper.JsonList(c, "trainers", dto.FromTrainerModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL
   GET /trainers/:id
============================================ */

func (ctl *TrainerController) GetByID(c *fiber.Ctx) error {
	ent, _, err := ctl.load(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	return helper.JsonOK(c, "trainer", dto.FromTrainerModel(*ent))
}

/* ============================================
   PATCH (admin only)
   PATCH /a/trainers/:id
============================================ */

func (ctl *TrainerController) Patch(c *fiber.Ctx) error {
	ent, companyID, err := ctl.load(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	var p dto.TrainerUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.ApplyUpdates(ent)

	if err := ctl.DB.Save(ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to update trainer")
	}
	return helper.JsonUpdated(c, "trainer updated", dto.FromTrainerModel(*ent))
}

/* ============================================
   DELETE (soft) — admin only
   DELETE /a/trainers/:id
============================================ */

func (ctl *TrainerController) Delete(c *fiber.Ctx) error {
	ent, companyID, err := ctl.load(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	if err := ctl.DB.Delete(ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to delete trainer")
	}
	return helper.JsonDeleted(c, "trainer deleted", fiber.Map{"trainer_id": ent.TrainerID})
}

func (ctl *TrainerController) load(c *fiber.Ctx) (*model.TrainerModel, uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "company context not found")
	}

	var ent model.TrainerModel
	if err := ctl.DB.
		Where("trainer_company_id = ? AND trainer_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "trainer not found")
		}
		return nil, uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load trainer")
	}
	return &ent, companyID, nil
}
