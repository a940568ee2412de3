package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
)

var store *database.Store

func SetupAuthRoutes(app *fiber.App, s *database.Store) {
	store = s

	auth := app.Group("/auth")
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)
}
