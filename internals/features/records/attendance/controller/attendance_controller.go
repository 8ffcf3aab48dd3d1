// file: internals/features/records/attendance/controller/attendance_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "azubiplan_backend/internals/features/records/attendance/dto"
	model "azubiplan_backend/internals/features/records/attendance/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{DB: db, Validator: v}
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

func dateRange(c *fiber.Ctx, q *gorm.DB, col string) (*gorm.DB, error) {
	if from := c.Query("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid from date")
		}
		q = q.Where(col+" >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid to date")
		}
		q = q.Where(col+" <= ?", d)
	}
	return q, nil
}

/* ============================================
   SCHOOL ATTENDANCE
============================================ */

// POST /a/school-attendances
func (ctl *AttendanceController) CreateSchoolAttendance(c *fiber.Ctx) error {
	var p dto.SchoolAttendanceCreateDTO
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
		return httpErr(c, fiber.StatusInternalServerError, "failed to create school attendance")
	}
	return helper.JsonCreated(c, "school attendance created", dto.FromSchoolAttendanceModel(ent))
}

// GET /trainees/:id/school-attendances?from=&to=
func (ctl *AttendanceController) ListSchoolAttendances(c *fiber.Ctx) error {
	traineeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.SchoolAttendanceModel{}).
		Where("school_attendance_company_id = ? AND school_attendance_trainee_id = ?", companyID, traineeID)
	q, err = dateRange(c, q, "school_attendance_date")
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count school attendances")
	}

	var list []model.SchoolAttendanceModel
	if err := q.Order("school_attendance_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list school attendances")
	}

	return helper.JsonList(c, "school attendances", dto.FromSchoolAttendanceModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   ACTIVITY LOG
============================================ */

// POST /a/activity-logs
func (ctl *AttendanceController) CreateActivityLog(c *fiber.Ctx) error {
	var p dto.ActivityLogCreateDTO
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
		return httpErr(c, fiber.StatusInternalServerError, "failed to create activity log")
	}
	return helper.JsonCreated(c, "activity log created", dto.FromActivityLogModel(ent))
}

// GET /training-plans/:id/activity-logs?from=&to=
func (ctl *AttendanceController) ListActivityLogsByPlan(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.ActivityLogModel{}).
		Where("activity_log_company_id = ? AND activity_log_plan_id = ?", companyID, planID)
	q, err = dateRange(c, q, "activity_log_date")
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count activity logs")
	}

	var list []model.ActivityLogModel
	if err := q.Order("activity_log_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list activity logs")
	}

	return helper.JsonList(c, "activity logs", dto.FromActivityLogModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
