// file: internals/features/apprenticeship/curriculum/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "azubiplan_backend/internals/features/apprenticeship/curriculum/controller"
)

// CurriculumUserRoutes exposes read-only catalog access to authenticated users.
func CurriculumUserRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	occCtl := controller.NewOccupationController(db, v)
	unitCtl := controller.NewCurriculumUnitController(db, v)

	occ := r.Group("/occupations")
	occ.Get("/", occCtl.List)
	occ.Get("/:id", occCtl.GetByID)
	occ.Get("/:id/curriculum-units", unitCtl.ListByOccupation)
}
