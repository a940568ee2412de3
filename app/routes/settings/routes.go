package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

var (
	store    *database.Store
	waitlist *services.WaitlistService
)

func SetupSettingsRoutes(app *fiber.App, s *database.Store, w *services.WaitlistService) {
	store = s
	waitlist = w

	admin := app.Group("/api/admin/settings", auth.AdminMiddleware)
	admin.Get("/", GetSettingsAPI)
	admin.Put("/", UpdateSettingsAPI)
}
