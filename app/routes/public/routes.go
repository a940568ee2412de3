package public

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

var (
	store     *database.Store
	limiter   services.RateLimiter
	mailer    *services.SMTPMailer
	donations *services.DonationService
)

func SetupPublicRoutes(app *fiber.App, s *database.Store, rl services.RateLimiter, m *services.SMTPMailer, d *services.DonationService) {
	store = s
	limiter = rl
	mailer = m
	donations = d

	app.Post("/api/contact", ContactAPI)
	app.Post("/api/newsletter/subscribe", SubscribeAPI)
	app.Post("/api/corporate-inquiry", CorporateInquiryAPI)
	app.Post("/api/donation-received", DonationReceivedAPI)
}
