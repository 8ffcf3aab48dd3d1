// file: internals/features/personnel/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/personnel/controller"
)

// PersonnelUserRoutes exposes read-only trainer listing to authenticated
// members.
func PersonnelUserRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	trainerCtl := controller.NewTrainerController(db, v)
	r.Get("/trainers", trainerCtl.List)
	r.Get("/trainers/:id", trainerCtl.GetByID)
}
