// file: internals/features/apprenticeship/compliance/controller/compliance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	service "azubiplan_backend/internals/features/apprenticeship/compliance/service"
	examModel "azubiplan_backend/internals/features/apprenticeship/examinations/model"
	planModel "azubiplan_backend/internals/features/apprenticeship/training_plans/model"
	personnelModel "azubiplan_backend/internals/features/personnel/model"
	certModel "azubiplan_backend/internals/features/records/trainer_certifications/model"
	wtModel "azubiplan_backend/internals/features/records/working_time/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

/* ============================================
   Controller
   Assembles the check snapshot from the database and hands it to the pure
   rule set. Violations are payload, never HTTP errors.
============================================ */

type ComplianceController struct {
	DB     *gorm.DB
	Policy configs.CompliancePolicy
}

func NewComplianceController(db *gorm.DB, policy configs.CompliancePolicy) *ComplianceController {
	return &ComplianceController{DB: db, Policy: policy}
}

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

/* ============================================
   RUN CHECK
   GET /training-plans/:id/compliance-check?as_of=
============================================ */

func (ctl *ComplianceController) CheckPlan(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	now := time.Now()
	if asOf := c.Query("as_of"); asOf != "" {
		d, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return httpErr(c, fiber.StatusBadRequest, "invalid as_of date")
		}
		now = d
	}

	in, err := ctl.buildInput(companyID, planID, now)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	return helper.JsonOK(c, "compliance check", service.Check(*in))
}

// buildInput loads the plan and every record the rules look at. Working time
// is limited to the configured lookback window ending at the check date.
func (ctl *ComplianceController) buildInput(companyID, planID uuid.UUID, now time.Time) (*service.CheckInput, error) {
	var plan planModel.TrainingPlanModel
	if err := ctl.DB.
		Where("training_plan_company_id = ? AND training_plan_id = ?", companyID, planID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("training plan %s not found", planID)
		}
		return nil, helper.ErrInternal("failed to load training plan: %v", err)
	}

	var trainee personnelModel.TraineeModel
	if err := ctl.DB.
		Where("trainee_company_id = ? AND trainee_id = ?", companyID, plan.TrainingPlanTraineeID).
		First(&trainee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("trainee %s not found", plan.TrainingPlanTraineeID)
		}
		return nil, helper.ErrInternal("failed to load trainee: %v", err)
	}

	lookbackStart := now.AddDate(0, 0, -ctl.Policy.WorkingTimeLookbackDays)
	var wtRecords []wtModel.WorkingTimeRecordModel
	if err := ctl.DB.
		Where("working_time_record_company_id = ? AND working_time_record_trainee_id = ?", companyID, trainee.TraineeID).
		Where("working_time_record_date >= ? AND working_time_record_date <= ?", lookbackStart, now).
		Order("working_time_record_date ASC").
		Find(&wtRecords).Error; err != nil {
		return nil, helper.ErrInternal("failed to load working time records: %v", err)
	}

	var certs []certModel.TrainerCertificationModel
	if err := ctl.DB.
		Where("trainer_certification_company_id = ? AND trainer_certification_trainer_id = ?", companyID, plan.TrainingPlanTrainerID).
		Order("trainer_certification_issued_at DESC").
		Find(&certs).Error; err != nil {
		return nil, helper.ErrInternal("failed to load trainer certifications: %v", err)
	}

	var exams []examModel.ExaminationModel
	if err := ctl.DB.
		Where("examination_company_id = ? AND examination_plan_id = ?", companyID, planID).
		Order("examination_target_date ASC").
		Find(&exams).Error; err != nil {
		return nil, helper.ErrInternal("failed to load examinations: %v", err)
	}

	in := service.CheckInput{
		Now:                      now,
		Policy:                   ctl.Policy,
		PlanStartDate:            plan.TrainingPlanStartDate,
		PlanEndDate:              plan.TrainingPlanEndDate,
		TraineeDateOfBirth:       trainee.TraineeDateOfBirth,
		MonthlyCompensationCents: trainee.TraineeMonthlyCompensationCents,
	}

	for _, r := range wtRecords {
		in.WorkPeriods = append(in.WorkPeriods, service.WorkPeriod{
			Date:         r.WorkingTimeRecordDate,
			StartAt:      r.WorkingTimeRecordStartAt,
			EndAt:        r.WorkingTimeRecordEndAt,
			BreakMinutes: r.WorkingTimeRecordBreakMinutes,
		})
	}
	for _, cert := range certs {
		in.Certifications = append(in.Certifications, service.Certification{
			Title:      cert.TrainerCertificationTitle,
			IssuedAt:   cert.TrainerCertificationIssuedAt,
			ValidUntil: cert.TrainerCertificationValidUntil,
		})
	}
	for _, e := range exams {
		in.Exams = append(in.Exams, service.ExamState{
			Type:       e.ExaminationType,
			TargetDate: e.ExaminationTargetDate,
			Status:     e.ExaminationStatus,
		})
	}

	return &in, nil
}
