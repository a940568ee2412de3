package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/config"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/database"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/applications"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/dashboard"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/emails"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/payments"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/public"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/schools"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/settings"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/waitlist"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

// errorHandler renders every unhandled error as a JSON payload.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize configuration and database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := database.NewStore(config.GetDB())
	mailer := services.NewSMTPMailer(config.AppConfig.SMTP, config.AppConfig.FromName)
	limiter := services.NewMemoryRateLimiter()

	lifecycle := services.NewLifecycleService(store)
	notifier := services.NewNotifier(store, store, store, mailer)
	waitlistSvc := services.NewWaitlistService(store, store, lifecycle, store, mailer)
	donationSvc := services.NewDonationService(store, mailer)
	bulkMailer := services.NewBulkMailer(store, store, store, store, mailer)
	reminderSvc := services.NewReminderService(store, store, store, store, mailer)

	// Status change emails run off the write path
	go notifier.Run(lifecycle.Events())

	// Start background scheduler
	services.StartScheduler(reminderSvc)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app, store)
	applications.SetupApplicationRoutes(app, store, lifecycle, limiter, mailer)
	waitlist.SetupWaitlistRoutes(app, store, waitlistSvc)
	payments.SetupPaymentRoutes(app, donationSvc)
	public.SetupPublicRoutes(app, store, limiter, mailer, donationSvc)
	emails.SetupEmailRoutes(app, store, bulkMailer, mailer)
	schools.SetupSchoolRoutes(app, store)
	settings.SetupSettingsRoutes(app, store, waitlistSvc)
	dashboard.SetupDashboardRoutes(app, store, reminderSvc)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
