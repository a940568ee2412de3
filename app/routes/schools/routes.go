package schools

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
)

var store *database.Store

func SetupSchoolRoutes(app *fiber.App, s *database.Store) {
	store = s

	admin := app.Group("/api/admin/schools", auth.AdminMiddleware)
	admin.Post("/", CreateSchoolAPI)
	admin.Put("/:id", UpdateSchoolAPI)
	admin.Post("/:id/payments", RecordSchoolPaymentAPI)
}
