// file: internals/features/apprenticeship/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/apprenticeship/reports/controller"
	"azubiplan_backend/internals/middlewares"
)

// ReportAdminRoutes mounts report generation. Assembly touches many tables,
// so it sits behind its own tighter limiter.
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	r.Get("/training-plans/:id/report", middlewares.ReportRateLimiter(), ctl.Generate)
}
