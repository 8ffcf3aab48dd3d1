// file: internals/features/apprenticeship/examinations/controller/examination_controller.go
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
	curriculumModel "azubiplan_backend/internals/features/apprenticeship/curriculum/model"
	dto "azubiplan_backend/internals/features/apprenticeship/examinations/dto"
	model "azubiplan_backend/internals/features/apprenticeship/examinations/model"
	service "azubiplan_backend/internals/features/apprenticeship/examinations/service"
	planModel "azubiplan_backend/internals/features/apprenticeship/training_plans/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type ExaminationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Policy    configs.CompliancePolicy
}

func NewExaminationController(db *gorm.DB, v *validator.Validate, policy configs.CompliancePolicy) *ExaminationController {
	if v == nil {
		v = validator.New()
	}
	return &ExaminationController{DB: db, Validator: v, Policy: policy}
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

func (ctl *ExaminationController) loadExam(c *fiber.Ctx) (*model.ExaminationModel, uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "company context not found")
	}

	var exam model.ExaminationModel
	if err := ctl.DB.
		Where("examination_company_id = ? AND examination_id = ?", companyID, id).
		First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, fiber.NewError(fiber.StatusNotFound, "examination not found")
		}
		return nil, uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load examination")
	}
	return &exam, companyID, nil
}

/* ============================================
   LIST by plan
   GET /training-plans/:id/examinations
============================================ */

func (ctl *ExaminationController) ListByPlan(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	var list []model.ExaminationModel
	if err := ctl.DB.
		Where("examination_company_id = ? AND examination_plan_id = ?", companyID, planID).
		Order("examination_target_date ASC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list examinations")
	}
	return helper.JsonOK(c, "examinations", dto.FromExaminationModels(list))
}

/* ============================================
   REGISTER (trainer or admin)
   POST /a/examinations/:id/register
============================================ */

func (ctl *ExaminationController) Register(c *fiber.Ctx) error {
	exam, companyID, err := ctl.loadExam(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureTrainerOrAdmin(c, companyID); err != nil {
		return err
	}

	var p dto.ExamRegisterDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	regDate := time.Now()
	if p.RegistrationDate != nil {
		regDate = *p.RegistrationDate
	}

	if err := service.Register(exam, regDate, ctl.Policy.ExamRegistrationLeadDays); err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.DB.Save(exam).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to save examination")
	}
	return helper.JsonUpdated(c, "examination registered", dto.FromExaminationModel(*exam))
}

/* ============================================
   MARK SAT (trainer or admin)
   POST /a/examinations/:id/sat
============================================ */

func (ctl *ExaminationController) MarkSat(c *fiber.Ctx) error {
	exam, companyID, err := ctl.loadExam(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureTrainerOrAdmin(c, companyID); err != nil {
		return err
	}

	var p dto.ExamSatDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	satAt := time.Now()
	if p.SatAt != nil {
		satAt = *p.SatAt
	}

	if err := service.RecordSat(exam, satAt); err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.DB.Save(exam).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to save examination")
	}
	return helper.JsonUpdated(c, "examination marked as sat", dto.FromExaminationModel(*exam))
}

/* ============================================
   RECORD RESULT (trainer or admin)
   POST /a/examinations/:id/result
============================================ */

func (ctl *ExaminationController) RecordResult(c *fiber.Ctx) error {
	exam, companyID, err := ctl.loadExam(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	if err := helperAuth.EnsureTrainerOrAdmin(c, companyID); err != nil {
		return err
	}

	var p dto.ExamResultCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	threshold, err := ctl.passingThreshold(companyID, exam.ExaminationPlanID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	result, err := service.RecordResult(exam, p.SectionScores, threshold)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	scoresJSON, err := json.Marshal(result.SectionScores)
	if err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to encode section scores")
	}

	var attempts int64
	if err := ctl.DB.Model(&model.ExamResultModel{}).
		Where("exam_result_company_id = ? AND exam_result_examination_id = ?", companyID, exam.ExaminationID).
		Count(&attempts).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to count attempts")
	}

	resultRow := model.ExamResultModel{
		ExamResultCompanyID:     companyID,
		ExamResultExaminationID: exam.ExaminationID,
		ExamResultAttempt:       int(attempts) + 1,
		ExamResultOverallScore:  result.OverallScore,
		ExamResultSectionScores: datatypes.JSON(scoresJSON),
		ExamResultPassed:        result.Passed,
		ExamResultRecordedAt:    time.Now(),
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(exam).Error; err != nil {
			return err
		}
		return tx.Create(&resultRow).Error
	}); err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to record result")
	}

	return helper.JsonCreated(c, "examination result recorded", fiber.Map{
		"examination": dto.FromExaminationModel(*exam),
		"result":      dto.FromExamResultModel(resultRow),
	})
}

/* ============================================
   RESULT HISTORY
   GET /examinations/:id/results
============================================ */

func (ctl *ExaminationController) ListResults(c *fiber.Ctx) error {
	exam, companyID, err := ctl.loadExam(c)
	if err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	var list []model.ExamResultModel
	if err := ctl.DB.
		Where("exam_result_company_id = ? AND exam_result_examination_id = ?", companyID, exam.ExaminationID).
		Order("exam_result_attempt ASC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "failed to list results")
	}
	return helper.JsonOK(c, "examination results", dto.FromExamResultModels(list))
}

// passingThreshold resolves the occupation override for the exam's plan,
// falling back to the configured default.
func (ctl *ExaminationController) passingThreshold(companyID, planID uuid.UUID) (float64, error) {
	var plan planModel.TrainingPlanModel
	if err := ctl.DB.
		Where("training_plan_company_id = ? AND training_plan_id = ?", companyID, planID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, helper.ErrNotFound("training plan %s not found", planID)
		}
		return 0, helper.ErrInternal("failed to load training plan: %v", err)
	}

	var occ curriculumModel.OccupationModel
	if err := ctl.DB.
		Where("occupation_company_id = ? AND occupation_id = ?", companyID, plan.TrainingPlanOccupationID).
		First(&occ).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, helper.ErrNotFound("occupation %s not found", plan.TrainingPlanOccupationID)
		}
		return 0, helper.ErrInternal("failed to load occupation: %v", err)
	}

	if occ.OccupationPassingThreshold != nil {
		return *occ.OccupationPassingThreshold, nil
	}
	return ctl.Policy.ExamPassingThreshold, nil
}
