// file: internals/route/details/admin_routes.go
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
	certRoute "azubiplan_backend/internals/features/records/trainer_certifications/route"
	workingTimeRoute "azubiplan_backend/internals/features/records/working_time/route"
)

// AdminRoutes: management surfaces. Role checks stay in the handlers, so a
// trainer token can reach the subset it is allowed to use.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	curriculumRoute.CurriculumAdminRoutes(r, db)
	planRoute.TrainingPlanAdminRoutes(r, db)
	examRoute.ExaminationAdminRoutes(r, db)
	complianceRoute.ComplianceAdminRoutes(r, db)
	reportRoute.ReportAdminRoutes(r, db)
	personnelRoute.PersonnelAdminRoutes(r, db)
	workingTimeRoute.WorkingTimeAdminRoutes(r, db)
	certRoute.TrainerCertificationAdminRoutes(r, db)
	attendanceRoute.AttendanceAdminRoutes(r, db)
}
