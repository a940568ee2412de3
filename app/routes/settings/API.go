package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
)

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := store.GetSettings()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

func UpdateSettingsAPI(c *fiber.Ctx) error {
	var req models.AdminSettings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.AvailableFunds < 0 || req.LowFundsThreshold < 0 || req.ProgressReminderDays < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Values cannot be negative"})
	}

	if err := store.UpsertSettings(&req, auth.Actor(c)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save settings"})
	}

	// Funds may now cover waiting applications; surface that to the admin log.
	waitlist.CheckFundsThreshold(req.AvailableFunds, req.LowFundsThreshold)

	return c.JSON(fiber.Map{"success": true})
}
