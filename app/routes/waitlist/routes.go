package waitlist

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

var (
	store   *database.Store
	service *services.WaitlistService
)

func SetupWaitlistRoutes(app *fiber.App, s *database.Store, svc *services.WaitlistService) {
	store = s
	service = svc

	admin := app.Group("/api/admin/waitlist", auth.AdminMiddleware)
	admin.Get("/", ListWaitlistAPI)
	admin.Post("/", AddToWaitlistAPI)
	admin.Delete("/:id", RemoveFromWaitlistAPI)
	admin.Post("/:id/process", ProcessWaitlistEntryAPI)
}
