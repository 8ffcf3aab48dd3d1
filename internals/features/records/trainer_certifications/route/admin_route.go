// file: internals/features/records/trainer_certifications/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/records/trainer_certifications/controller"
)

func TrainerCertificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTrainerCertificationController(db, validator.New())

	r.Post("/trainer-certifications", ctl.Create)
	r.Delete("/trainer-certifications/:id", ctl.Delete)
	r.Get("/trainers/:id/certifications", ctl.ListByTrainer)
}
