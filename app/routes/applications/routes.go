package applications

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

var (
	store     *database.Store
	lifecycle *services.LifecycleService
	limiter   services.RateLimiter
	mailer    services.Mailer
)

func SetupApplicationRoutes(app *fiber.App, s *database.Store, l *services.LifecycleService, rl services.RateLimiter, m services.Mailer) {
	store = s
	lifecycle = l
	limiter = rl
	mailer = m

	app.Post("/api/applications", SubmitApplicationAPI)

	admin := app.Group("/api/admin/applications", auth.AdminMiddleware)
	admin.Get("/", ListApplicationsAPI)
	admin.Get("/:id", GetApplicationAPI)
	admin.Put("/:id/status", UpdateApplicationStatusAPI)
}
