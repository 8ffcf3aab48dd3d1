// file: internals/features/apprenticeship/training_plans/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	controller "azubiplan_backend/internals/features/apprenticeship/training_plans/controller"
)

// TrainingPlanUserRoutes exposes read-only plan state to trainees.
func TrainingPlanUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTrainingPlanController(db, validator.New(), configs.LoadCompliancePolicy())

	r.Get("/training-plans", ctl.List)
	r.Get("/training-plans/:id", ctl.GetByID)
}
