// file: internals/features/apprenticeship/compliance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	controller "azubiplan_backend/internals/features/apprenticeship/compliance/controller"
)

func ComplianceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewComplianceController(db, configs.LoadCompliancePolicy())

	r.Get("/training-plans/:id/compliance-check", ctl.CheckPlan)
}
