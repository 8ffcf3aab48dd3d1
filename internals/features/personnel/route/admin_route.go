// file: internals/features/personnel/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/personnel/controller"
)

// PersonnelAdminRoutes mounts trainee and trainer management under the admin
// group.
func PersonnelAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	trainees := r.Group("/trainees")
	traineeCtl := controller.NewTraineeController(db, v)
	trainees.Post("/", traineeCtl.Create)
	trainees.Get("/", traineeCtl.List)
	trainees.Get("/:id", traineeCtl.GetByID)
	trainees.Patch("/:id", traineeCtl.Patch)
	trainees.Delete("/:id", traineeCtl.Delete)

	trainers := r.Group("/trainers")
	trainerCtl := controller.NewTrainerController(db, v)
	trainers.Post("/", trainerCtl.Create)
	trainers.Get("/", trainerCtl.List)
	trainers.Get("/:id", trainerCtl.GetByID)
	trainers.Patch("/:id", trainerCtl.Patch)
	trainers.Delete("/:id", trainerCtl.Delete)
}
