package payments

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/config"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

var donations *services.DonationService

func SetupPaymentRoutes(app *fiber.App, svc *services.DonationService) {
	donations = svc
	stripe.Key = config.AppConfig.Stripe.SecretKey

	app.Post("/api/webhooks/paypal", PayPalWebhookAPI)
	app.Post("/api/webhooks/stripe", StripeWebhookAPI)
	app.Post("/api/stripe/checkout", StripeCheckoutAPI)
}
