// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azubiplan_backend/internals/configs"
	authMiddleware "azubiplan_backend/internals/middlewares/auth"
	details "azubiplan_backend/internals/route/details"
)

// SetupRoutes mounts the three API surfaces:
//
//	/api/public — no authentication, read-only catalog
//	/api/u      — any authenticated company member
//	/api/a      — admin/trainer operations (per-handler role guards)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/public")
	details.PublicRoutes(public, db)

	auth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := api.Group("/u", auth)
	details.UserRoutes(user, db)

	admin := api.Group("/a", auth)
	details.AdminRoutes(admin, db)
}
