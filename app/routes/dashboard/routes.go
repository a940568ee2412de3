package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

var (
	store     *database.Store
	reminders *services.ReminderService
)

func SetupDashboardRoutes(app *fiber.App, s *database.Store, r *services.ReminderService) {
	store = s
	reminders = r

	admin := app.Group("/api/admin", auth.AdminMiddleware)
	admin.Get("/impact-report", ImpactReportAPI)
	admin.Post("/reminders/run", RunRemindersAPI)
}
