// file: internals/features/apprenticeship/reports/controller/report_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumModel "azubiplan_backend/internals/features/apprenticeship/curriculum/model"
	examModel "azubiplan_backend/internals/features/apprenticeship/examinations/model"
	service "azubiplan_backend/internals/features/apprenticeship/reports/service"
	planModel "azubiplan_backend/internals/features/apprenticeship/training_plans/model"
	personnelModel "azubiplan_backend/internals/features/personnel/model"
	attendanceModel "azubiplan_backend/internals/features/records/attendance/model"
	wtModel "azubiplan_backend/internals/features/records/working_time/model"
	helper "azubiplan_backend/internals/helpers"
	helperAuth "azubiplan_backend/internals/helpers/auth"
)

/* ============================================
   Controller
   Loads the plan's records and hands them to the pure assembler. The report
   carries names only: birth dates and compensation never reach the snapshot.
============================================ */

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

/* ============================================
   GENERATE
   GET /training-plans/:id/report?from=&to=
============================================ */

func (ctl *ReportController) Generate(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "invalid id")
	}
	companyID, err := helperAuth.GetActiveCompanyID(c)
	if err != nil {
		return httpErr(c, fiber.StatusUnauthorized, "company context not found")
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "from date is required (YYYY-MM-DD)")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "to date is required (YYYY-MM-DD)")
	}

	in, err := ctl.buildInput(companyID, planID, from, to)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	rep, err := service.Assemble(*in)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "training report", rep)
}

func (ctl *ReportController) buildInput(companyID, planID uuid.UUID, from, to time.Time) (*service.ReportInput, error) {
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

	var trainer personnelModel.TrainerModel
	if err := ctl.DB.
		Where("trainer_company_id = ? AND trainer_id = ?", companyID, plan.TrainingPlanTrainerID).
		First(&trainer).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrInternal("failed to load trainer: %v", err)
	}

	var occ curriculumModel.OccupationModel
	if err := ctl.DB.
		Where("occupation_company_id = ? AND occupation_id = ?", companyID, plan.TrainingPlanOccupationID).
		First(&occ).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrInternal("failed to load occupation: %v", err)
	}

	in := service.ReportInput{
		From:            from,
		To:              to,
		GeneratedAt:     time.Now(),
		PlanID:          plan.TrainingPlanID,
		PlanStartDate:   plan.TrainingPlanStartDate,
		PlanEndDate:     plan.TrainingPlanEndDate,
		OccupationTitle: occ.OccupationTitle,
		TraineeName:     trainee.TraineeFullName,
		TrainerName:     trainer.TrainerFullName,
	}

	var units []planModel.ScheduledUnitModel
	if err := ctl.DB.
		Where("scheduled_unit_company_id = ? AND scheduled_unit_plan_id = ?", companyID, planID).
		Order("scheduled_unit_sequence ASC").
		Find(&units).Error; err != nil {
		return nil, helper.ErrInternal("failed to load scheduled units: %v", err)
	}
	for _, u := range units {
		in.Units = append(in.Units, service.UnitEntry{
			Sequence:  u.ScheduledUnitSequence,
			Title:     u.ScheduledUnitTitle,
			StartDate: u.ScheduledUnitStartDate,
			EndDate:   u.ScheduledUnitEndDate,
			Status:    u.ScheduledUnitStatus,
		})
	}

	var exams []examModel.ExaminationModel
	if err := ctl.DB.
		Where("examination_company_id = ? AND examination_plan_id = ?", companyID, planID).
		Order("examination_target_date ASC").
		Find(&exams).Error; err != nil {
		return nil, helper.ErrInternal("failed to load examinations: %v", err)
	}
	for _, e := range exams {
		entry := service.ExamEntry{
			Type:        e.ExaminationType,
			TargetDate:  e.ExaminationTargetDate,
			Status:      e.ExaminationStatus,
			LatestSatAt: e.ExaminationSatAt,
		}
		var latest examModel.ExamResultModel
		err := ctl.DB.
			Where("exam_result_company_id = ? AND exam_result_examination_id = ?", companyID, e.ExaminationID).
			Order("exam_result_attempt DESC").
			First(&latest).Error
		if err == nil {
			score := latest.ExamResultOverallScore
			entry.LatestScore = &score
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrInternal("failed to load examination results: %v", err)
		}
		in.Exams = append(in.Exams, entry)
	}

	var activities []attendanceModel.ActivityLogModel
	if err := ctl.DB.
		Where("activity_log_company_id = ? AND activity_log_plan_id = ?", companyID, planID).
		Order("activity_log_date ASC").
		Find(&activities).Error; err != nil {
		return nil, helper.ErrInternal("failed to load activity logs: %v", err)
	}
	for _, a := range activities {
		in.Activities = append(in.Activities, service.ActivityEntry{
			Date:        a.ActivityLogDate,
			Description: a.ActivityLogDescription,
			Hours:       a.ActivityLogHours,
		})
	}

	var attendances []attendanceModel.SchoolAttendanceModel
	if err := ctl.DB.
		Where("school_attendance_company_id = ? AND school_attendance_trainee_id = ?", companyID, trainee.TraineeID).
		Order("school_attendance_date ASC").
		Find(&attendances).Error; err != nil {
		return nil, helper.ErrInternal("failed to load school attendances: %v", err)
	}
	for _, a := range attendances {
		in.Attendances = append(in.Attendances, service.AttendanceEntry{
			Date:    a.SchoolAttendanceDate,
			Present: a.SchoolAttendancePresent,
			Note:    a.SchoolAttendanceNote,
		})
	}

	var wtRecords []wtModel.WorkingTimeRecordModel
	if err := ctl.DB.
		Where("working_time_record_company_id = ? AND working_time_record_trainee_id = ?", companyID, trainee.TraineeID).
		Order("working_time_record_date ASC").
		Find(&wtRecords).Error; err != nil {
		return nil, helper.ErrInternal("failed to load working time records: %v", err)
	}
	for _, w := range wtRecords {
		in.WorkEntries = append(in.WorkEntries, service.WorkEntry{
			Date:          w.WorkingTimeRecordDate,
			StartAt:       w.WorkingTimeRecordStartAt,
			EndAt:         w.WorkingTimeRecordEndAt,
			WorkedMinutes: w.WorkedMinutes(),
		})
	}

	return &in, nil
}
