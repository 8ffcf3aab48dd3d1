// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "azubiplan_backend/internals/helpers"
)

// PublicRoutes: everything of substance is tenant-scoped and sits behind a
// token, so the public surface is just service metadata.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	r.Get("/meta", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "service metadata", fiber.Map{
			"service": "azubiplan_backend",
			"version": "1",
		})
	})
}
