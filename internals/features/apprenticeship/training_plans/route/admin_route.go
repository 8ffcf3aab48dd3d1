// file: internals/features/apprenticeship/training_plans/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	controller "azubiplan_backend/internals/features/apprenticeship/training_plans/controller"
)

// TrainingPlanAdminRoutes mounts plan creation and progress management under
// the admin group.
func TrainingPlanAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTrainingPlanController(db, validator.New(), configs.LoadCompliancePolicy())

	plans := r.Group("/training-plans")
	plans.Post("/", ctl.Create)
	plans.Get("/", ctl.List)
	plans.Get("/:id", ctl.GetByID)
	plans.Post("/:id/refresh-statuses", ctl.RefreshStatuses)
	plans.Delete("/:id", ctl.Delete)

	r.Patch("/scheduled-units/:id", ctl.UpdateUnitStatus)
}
