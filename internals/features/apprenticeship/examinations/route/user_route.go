// file: internals/features/apprenticeship/examinations/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	controller "azubiplan_backend/internals/features/apprenticeship/examinations/controller"
)

// ExaminationUserRoutes exposes read-only examination state to trainees.
func ExaminationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewExaminationController(db, validator.New(), configs.LoadCompliancePolicy())

	r.Get("/training-plans/:id/examinations", ctl.ListByPlan)
	r.Get("/examinations/:id/results", ctl.ListResults)
}
