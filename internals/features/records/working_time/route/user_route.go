// file: internals/features/records/working_time/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/records/working_time/controller"
)

func WorkingTimeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewWorkingTimeRecordController(db, validator.New())

	r.Get("/trainees/:id/working-time-records", ctl.ListByTrainee)
}
