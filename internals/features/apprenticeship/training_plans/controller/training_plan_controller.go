// file: internals/features/apprenticeship/training_plans/controller/training_plan_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	curriculumService "azubiplan_backend/internals/features/apprenticeship/curriculum/service"
	examDto "azubiplan_backend/internals/features/apprenticeship/examinations/dto"
	examModel "azubiplan_backend/internals/features/apprenticeship/examinations/model"
	examService "azubiplan_backend/internals/features/apprenticeship/examinations/service"
	dto "azubiplan_backend/internals/features/apprenticeship/training_plans/dto"
	model "azubiplan_backend/internals/features/apprenticeship/training_plans/model"
	service "azubiplan_backend/internals/features/apprenticeship/training_plans/service"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type TrainingPlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Policy    configs.CompliancePolicy
}

func NewTrainingPlanController(db *gorm.DB, v *validator.Validate, policy configs.CompliancePolicy) *TrainingPlanController {
	if v == nil {
		v = validator.New()
	}
	return &TrainingPlanController{DB: db, Validator: v, Policy: policy}
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
   POST /a/training-plans
   Loads the occupation's catalog entry, projects the schedule and seeds the
   examinations, then persists everything in one transaction.
============================================ */

func (ctl *TrainingPlanController) Create(c *fiber.Ctx) error {
	var p dto.TrainingPlanCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	entry, err := curriculumService.LoadCatalogEntry(ctl.DB, companyID, p.TrainingPlanOccupationID, ctl.Policy.ExamPassingThreshold)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	sched := service.BuildSchedule(entry, p.TrainingPlanStartDate)

	plan := model.TrainingPlanModel{
		TrainingPlanCompanyID:      companyID,
		TrainingPlanTraineeID:      p.TrainingPlanTraineeID,
		TrainingPlanOccupationID:   p.TrainingPlanOccupationID,
		TrainingPlanTrainerID:      p.TrainingPlanTrainerID,
		TrainingPlanStartDate:      sched.StartDate,
		TrainingPlanEndDate:        sched.EndDate,
		TrainingPlanDurationMonths: entry.DurationMonths,
		TrainingPlanIsActive:       true,
	}

	var units []model.ScheduledUnitModel
	var exams []examModel.ExaminationModel

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		for _, u := range sched.Units {
			units = append(units, model.ScheduledUnitModel{
				ScheduledUnitCompanyID:        companyID,
				ScheduledUnitPlanID:           plan.TrainingPlanID,
				ScheduledUnitCurriculumUnitID: u.CurriculumUnitID,
				ScheduledUnitSequence:         u.Sequence,
				ScheduledUnitTitle:            u.Title,
				ScheduledUnitStartDate:        u.StartDate,
				ScheduledUnitEndDate:          u.EndDate,
				ScheduledUnitStatus:           model.ScheduledUnitStatusPlanned,
			})
		}
		if len(units) > 0 {
			if err := tx.Create(&units).Error; err != nil {
				return err
			}
		}

		for _, target := range sched.ExamTargets {
			bp := examService.DefaultBlueprint(target.Type, target.TargetDate)
			raw, err := json.Marshal(bp.Sections)
			if err != nil {
				return err
			}
			exams = append(exams, examModel.ExaminationModel{
				ExaminationCompanyID:       companyID,
				ExaminationPlanID:          plan.TrainingPlanID,
				ExaminationType:            bp.Type,
				ExaminationTargetDate:      bp.TargetDate,
				ExaminationDurationMinutes: bp.DurationMinutes,
				ExaminationSections:        datatypes.JSON(raw),
				ExaminationOverallWeight:   bp.OverallWeight,
				ExaminationStatus:          examModel.ExamStatusNotScheduled,
			})
		}
		return tx.Create(&exams).Error
	}); err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to create training plan")
	}

	return helper.JsonCreated(c, "training plan created", fiber.Map{
		"training_plan":   dto.FromTrainingPlanModel(plan),
		"scheduled_units": dto.FromScheduledUnitModels(units),
		"examinations":    examDto.FromExaminationModels(exams),
	})
}

/* ============================================
   LIST
   GET /training-plans?trainee_id=&active=
============================================ */

func (ctl *TrainingPlanController) List(c *fiber.Ctx) error {
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TrainingPlanModel{}).
		Where("training_plan_company_id = ?", companyID)

	if tid := c.Query("trainee_id"); tid != "" {
		traineeID, err := uuid.Parse(tid)
		if err != nil {
			return httpErr(c, fiber.StatusBadRequest, "invalid trainee_id")
		}
		q = q.Where("training_plan_trainee_id = ?", traineeID)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("training_plan_is_active = ?", active == "true" || active == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count training plans")
	}

	var list []model.TrainingPlanModel
	if err := q.Order("training_plan_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list training plans")
	}

	return helper.JsonList(c, "training plans", dto.FromTrainingPlanModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL (plan + ordered units)
   GET /training-plans/:id
============================================ */

func (ctl *TrainingPlanController) GetByID(c *fiber.Ctx) error {
	plan, companyID, err := ctl.loadPlan(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var units []model.ScheduledUnitModel
	if err := ctl.DB.
		Where("scheduled_unit_company_id = ? AND scheduled_unit_plan_id = ?", companyID, plan.TrainingPlanID).
		Order("scheduled_unit_sequence ASC").
		Find(&units).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to load scheduled units")
	}

	return helper.JsonOK(c, "training plan", fiber.Map{
		"training_plan":   dto.FromTrainingPlanModel(*plan),
		"scheduled_units": dto.FromScheduledUnitModels(units),
	})
}

/* ============================================
   REFRESH STATUSES (trainer or admin)
   POST /a/training-plans/:id/refresh-statuses
   Flags overdue/active units by comparing now against each window. Completed
   units are never touched.
============================================ */

func (ctl *TrainingPlanController) RefreshStatuses(c *fiber.Ctx) error {
	plan, companyID, err := ctl.loadPlan(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureTrainerOrAdmin(c, companyID); err != nil {
		return err
	}

	var units []model.ScheduledUnitModel
	if err := ctl.DB.
		Where("scheduled_unit_company_id = ? AND scheduled_unit_plan_id = ?", companyID, plan.TrainingPlanID).
		Order("scheduled_unit_sequence ASC").
		Find(&units).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to load scheduled units")
	}

	now := time.Now()
	changed := 0
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for i := range units {
			next := service.DeriveUnitStatus(units[i].ScheduledUnitStatus,
				units[i].ScheduledUnitStartDate, units[i].ScheduledUnitEndDate, now)
			if next == units[i].ScheduledUnitStatus {
				continue
			}
			units[i].ScheduledUnitStatus = next
			if err := tx.Save(&units[i]).Error; err != nil {
				return err
			}
			changed++
		}
		return nil
	}); err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to refresh statuses")
	}

	return helper.JsonUpdated(c, "unit statuses refreshed", fiber.Map{
		"changed":         changed,
		"scheduled_units": dto.FromScheduledUnitModels(units),
	})
}

/* ============================================
   RECORD UNIT PROGRESS (trainer or admin)
   PATCH /a/scheduled-units/:id
============================================ */

func (ctl *TrainingPlanController) UpdateUnitStatus(c *fiber.Ctx) error {
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

	var p dto.ScheduledUnitStatusDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var unit model.ScheduledUnitModel
	if err := ctl.DB.
		Where("scheduled_unit_company_id = ? AND scheduled_unit_id = ?", companyID, id).
		First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "scheduled unit not found")
		}
		return httpErr(c, fiber.StatusInternalServerError, "failed to load scheduled unit")
	}

	unit.ScheduledUnitStatus = p.ScheduledUnitStatus
	if err := ctl.DB.Save(&unit).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to update scheduled unit")
	}
	return helper.JsonUpdated(c, "scheduled unit updated", dto.FromScheduledUnitModel(unit))
}

/* ============================================
   DELETE (soft) — admin only
   DELETE /a/training-plans/:id
============================================ */

func (ctl *TrainingPlanController) Delete(c *fiber.Ctx) error {
	plan, companyID, err := ctl.loadPlan(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureCompanyAdmin(c, companyID); err != nil {
		return err
	}

	if err := ctl.DB.Delete(plan).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to delete training plan")
	}
	return helper.JsonDeleted(c, "training plan deleted", fiber.Map{"training_plan_id": plan.TrainingPlanID})
}

func (ctl *TrainingPlanController) loadPlan(c *fiber.Ctx) (*model.TrainingPlanModel, uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "company context not found")
	}

	var plan model.TrainingPlanModel
	if err := ctl.DB.
		Where("training_plan_company_id = ? AND training_plan_id = ?", companyID, id).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "training plan not found")
		}
		return nil, uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load training plan")
	}
	return &plan, companyID, nil
}
