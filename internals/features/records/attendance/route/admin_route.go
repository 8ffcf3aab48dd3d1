// file: internals/features/records/attendance/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/records/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db, validator.New())

	r.Post("/school-attendances", ctl.CreateSchoolAttendance)
	r.Get("/trainees/:id/school-attendances", ctl.ListSchoolAttendances)

	r.Post("/activity-logs", ctl.CreateActivityLog)
	r.Get("/training-plans/:id/activity-logs", ctl.ListActivityLogsByPlan)
}
