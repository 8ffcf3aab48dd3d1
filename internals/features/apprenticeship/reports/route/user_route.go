// file: internals/features/apprenticeship/reports/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/apprenticeship/reports/controller"
	"azubiplan_backend/internals/middlewares"
)

func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	r.Get("/training-plans/:id/report", middlewares.ReportRateLimiter(), ctl.Generate)
}
