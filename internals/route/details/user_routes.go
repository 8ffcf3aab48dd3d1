// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	complianceRoute "azubiplan_backend/internals/features/apprenticeship/compliance/route"
	curriculumRoute "azubiplan_backend/internals/features/apprenticeship/curriculum/route"
	examRoute "azubiplan_backend/internals/features/apprenticeship/examinations/route"
	reportRoute "azubiplan_backend/internals/features/apprenticeship/reports/route"
	planRoute "azubiplan_backend/internals/features/apprenticeship/training_plans/route"
	personnelRoute "azubiplan_backend/internals/features/personnel/route"
	attendanceRoute "azubiplan_backend/internals/features/records/attendance/route"
	workingTimeRoute "azubiplan_backend/internals/features/records/working_time/route"
)

// UserRoutes: read surfaces for any authenticated company member.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	curriculumRoute.CurriculumUserRoutes(r, db)
	planRoute.TrainingPlanUserRoutes(r, db)
	examRoute.ExaminationUserRoutes(r, db)
	complianceRoute.ComplianceUserRoutes(r, db)
	reportRoute.ReportUserRoutes(r, db)
	personnelRoute.PersonnelUserRoutes(r, db)
	workingTimeRoute.WorkingTimeUserRoutes(r, db)
	attendanceRoute.AttendanceUserRoutes(r, db)
}
