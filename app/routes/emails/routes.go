package emails

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

var (
	store  *database.Store
	bulk   *services.BulkMailer
	mailer services.Mailer
)

func SetupEmailRoutes(app *fiber.App, s *database.Store, b *services.BulkMailer, m services.Mailer) {
	store = s
	bulk = b
	mailer = m

	admin := app.Group("/api/admin/emails", auth.AdminMiddleware)
	admin.Get("/templates", ListTemplatesAPI)
	admin.Post("/templates", CreateTemplateAPI)
	admin.Put("/templates/:id", UpdateTemplateAPI)
	admin.Delete("/templates/:id", DeleteTemplateAPI)
	admin.Post("/send", SendTemplatedEmailAPI)
	admin.Post("/send-bulk", SendBulkEmailAPI)
	admin.Get("/logs", ListEmailLogsAPI)
	admin.Post("/subscribers/import", ImportSubscribersAPI)
}
