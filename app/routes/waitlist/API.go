package waitlist

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

func ListWaitlistAPI(c *fiber.Ctx) error {
	entries, err := store.ListWaitlist()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load waitlist"})
	}
	if entries == nil {
		entries = []models.WaitlistEntry{}
	}
	return c.JSON(fiber.Map{"success": true, "waitlist": entries})
}

func AddToWaitlistAPI(c *fiber.Ctx) error {
	type AddRequest struct {
		ApplicationID string `json:"applicationId"`
		Reason        string `json:"reason"`
		Priority      string `json:"priority"`
		Notes         string `json:"notes"`
	}

	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	entry, err := service.Add(req.ApplicationID, req.Reason, req.Priority, req.Notes, auth.Actor(c))
	if err != nil {
		return c.Status(apiStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "entry": entry})
}

func RemoveFromWaitlistAPI(c *fiber.Ctx) error {
	if err := service.Remove(c.Params("id")); err != nil {
		return c.Status(apiStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

func ProcessWaitlistEntryAPI(c *fiber.Ctx) error {
	if err := service.Process(c.Params("id"), auth.Actor(c)); err != nil {
		return c.Status(apiStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

func apiStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return 400
	case errors.Is(err, services.ErrNotFound):
		return 404
	case errors.Is(err, services.ErrAlreadyExists):
		return 409
	}
	return 500
}
