// file: internals/features/personnel/controller/trainee_controller.go
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

/* ============================================
   Controller
============================================ */

type TraineeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTraineeController(db *gorm.DB, v *validator.Validate) *TraineeController {
	if v == nil {
		v = validator.New()
	}
	return &TraineeController{DB: db, Validator: v}
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
   POST /a/trainees
============================================ */

func (ctl *TraineeController) Create(c *fiber.Ctx) error {
	var p dto.TraineeCreateDTO
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
		return httpErr(c, fiber.StatusInternalServerError, "failed to create trainee")
	}
	return helper.JsonCreated(c, "trainee created", dto.FromTraineeModel(ent))
}

/* ============================================
   LIST
   GET /trainees?active=&q=
============================================ */

func (ctl *TraineeController) List(c *fiber.Ctx) error {
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TraineeModel{}).
		Where("trainee_company_id = ?", companyID)

	if active := c.Query("active"); active != "" {
		q = q.Where("trainee_is_active = ?", active == "true" || active == "1")
	}
	if term := c.Query("q"); term != "" {
		q = q.Where("trainee_full_name ILIKE ?", "%"+term+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count trainees")
	}

	var list []model.TraineeModel
	if err := q.Order("trainee_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list trainees")
	}

	return helper.JsonList(c, "trainees", dto.FromTraineeModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL
   GET /trainees/:id
============================================ */

func (ctl *TraineeController) GetByID(c *fiber.Ctx) error {
	ent, _, err := ctl.load(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	return helper.JsonOK(c, "trainee", dto.FromTraineeModel(*ent))
}

/* ============================================
   PATCH (admin only)
   PATCH /a/trainees/:id
============================================ */

func (ctl *TraineeController) Patch(c *fiber.Ctx) error {
	ent, companyID, err := ctl.load(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	var p dto.TraineeUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.ApplyUpdates(ent)

	if err := ctl.DB.Save(ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to update trainee")
	}
	return helper.JsonUpdated(c, "trainee updated", dto.FromTraineeModel(*ent))
}

/* ============================================
   DELETE (soft) — admin only
   DELETE /a/trainees/:id
============================================ */

func (ctl *TraineeController) Delete(c *fiber.Ctx) error {
	ent, companyID, err := ctl.load(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	if err := ctl.DB.Delete(ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to delete trainee")
	}
	return helper.JsonDeleted(c, "trainee deleted", fiber.Map{"trainee_id": ent.TraineeID})
}

func (ctl *TraineeController) load(c *fiber.Ctx) (*model.TraineeModel, uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "company context not found")
	}

	var ent model.TraineeModel
	if err := ctl.DB.
		Where("trainee_company_id = ? AND trainee_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "trainee not found")
		}
		return nil, uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load trainee")
	}
	return &ent, companyID, nil
}
