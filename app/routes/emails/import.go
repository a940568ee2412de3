package emails

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

// ImportSubscribersAPI bulk-loads newsletter subscribers from an admin
// upload. Invalid and already-subscribed addresses are skipped, not errors.
func ImportSubscribersAPI(c *fiber.Ctx) error {
	type ImportRequest struct {
		Subscribers []struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"subscribers"`
	}

	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.Subscribers) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No subscribers provided"})
	}
	if len(req.Subscribers) > 500 {
		return c.Status(400).JSON(fiber.Map{"error": "Maximum 500 subscribers per import"})
	}

	actor := auth.Actor(c)
	imported, skipped := 0, 0
	for _, sub := range req.Subscribers {
		email := services.Sanitize(sub.Email)
		if !services.IsValidEmail(email) {
			skipped++
			continue
		}
		exists, err := store.SubscriberExists(email)
		if err != nil {
			log.Printf("Import: failed to check subscriber %s: %v", email, err)
			skipped++
			continue
		}
		if exists {
			skipped++
			continue
		}
		if _, err := store.InsertSubscriber(&models.NewsletterSubscriber{
			Email:      email,
			Name:       services.Sanitize(sub.Name),
			Source:     "import",
			ImportedBy: actor,
		}); err != nil {
			log.Printf("Import: failed to insert subscriber %s: %v", email, err)
			skipped++
			continue
		}
		imported++
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imported": imported,
		"skipped":  skipped,
		"total":    len(req.Subscribers),
	})
}
