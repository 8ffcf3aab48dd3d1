// file: internals/features/apprenticeship/curriculum/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/apprenticeship/curriculum/controller"
)

// CurriculumAdminRoutes mounts catalog maintenance under the admin group.
func CurriculumAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	occCtl := controller.NewOccupationController(db, v)
	unitCtl := controller.NewCurriculumUnitController(db, v)

	occ := r.Group("/occupations")
	occ.Post("/", occCtl.Create)
	occ.Get("/", occCtl.List)
	occ.Get("/:id", occCtl.GetByID)
	occ.Patch("/:id", occCtl.Patch)
	occ.Delete("/:id", occCtl.Delete)
	occ.Get("/:id/curriculum-units", unitCtl.ListByOccupation)

	units := r.Group("/curriculum-units")
	units.Post("/", unitCtl.Create)
	units.Patch("/:id", unitCtl.Patch)
	units.Delete("/:id", unitCtl.Delete)
}
