// file: internals/features/apprenticeship/examinations/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	controller "azubiplan_backend/internals/features/apprenticeship/examinations/controller"
)

// ExaminationAdminRoutes mounts the examination workflow under the admin group.
func ExaminationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewExaminationController(db, validator.New(), configs.LoadCompliancePolicy())

	exams := r.Group("/examinations")
	exams.Post("/:id/register", ctl.Register)
	exams.Post("/:id/sat", ctl.MarkSat)
	exams.Post("/:id/result", ctl.RecordResult)
	exams.Get("/:id/results", ctl.ListResults)

	r.Get("/training-plans/:id/examinations", ctl.ListByPlan)
}
