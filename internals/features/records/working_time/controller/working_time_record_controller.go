// file: internals/features/records/working_time/controller/working_time_record_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "azubiplan_backend/internals/features/records/working_time/dto"
	model "azubiplan_backend/internals/features/records/working_time/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

type WorkingTimeRecordController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWorkingTimeRecordController(db *gorm.DB, v *validator.Validate) *WorkingTimeRecordController {
	if v == nil {
		v = validator.New()
	}
	return &WorkingTimeRecordController{DB: db, Validator: v}
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
   CREATE (trainer or admin)
   POST /a/working-time-records
============================================ */

func (ctl *WorkingTimeRecordController) Create(c *fiber.Ctx) error {
	var p dto.WorkingTimeRecordCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureTrainerOrAdmin(c, companyID); err != nil {
		return err
	}

	ent := p.ToModel(companyID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to create working time record")
	}
	return helper.JsonCreated(c, "working time record created", dto.FromWorkingTimeRecordModel(ent))
}

/* ============================================
   LIST by trainee
   GET /trainees/:id/working-time-records?from=&to=
============================================ */

func (ctl *WorkingTimeRecordController) ListByTrainee(c *fiber.Ctx) error {
	traineeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.WorkingTimeRecordModel{}).
		Where("working_time_record_company_id = ? AND working_time_record_trainee_id = ?", companyID, traineeID)

	if from := c.Query("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return httpErr(c, fiber.StatusBadRequest, "invalid from date")
		}
		q = q.Where("working_time_record_date >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return httpErr(c, fiber.StatusBadRequest, "invalid to date")
		}
		q = q.Where("working_time_record_date <= ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count working time records")
	}

	var list []model.WorkingTimeRecordModel
	if err := q.Order("working_time_record_date DESC, working_time_record_start_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list working time records")
	}

	return helper.JsonList(c, "working time records", dto.FromWorkingTimeRecordModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DELETE (soft) — trainer or admin
   DELETE /a/working-time-records/:id
============================================ */

func (ctl *WorkingTimeRecordController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureTrainerOrAdmin(c, companyID); err != nil {
		return err
	}

	var ent model.WorkingTimeRecordModel
	if err := ctl.DB.
		Where("working_time_record_company_id = ? AND working_time_record_id = ?", companyID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "working time record not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load working time record")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to delete working time record")
	}
	return helper.JsonDeleted(c, "working time record deleted", fiber.Map{"working_time_record_id": ent.WorkingTimeRecordID})
}
