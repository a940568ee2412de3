package schools

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

func CreateSchoolAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		models.SwimSchool
		AcceptingStudents *bool `json:"acceptingStudents"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	school := req.SwimSchool
	// New partners accept students unless the admin says otherwise.
	school.AcceptingStudents = req.AcceptingStudents == nil || *req.AcceptingStudents

	school.Name = services.Sanitize(school.Name)
	school.ContactPerson = services.Sanitize(school.ContactPerson)
	school.Notes = services.Sanitize(school.Notes)
	if school.Name == "" || !services.IsValidEmail(school.Email) {
		return c.Status(400).JSON(fiber.Map{"error": "School name and a valid email are required"})
	}
	if school.Status == "" {
		school.Status = "active"
	}
	school.CreatedBy = auth.Actor(c)

	id, err := store.InsertSwimSchool(&school)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create school"})
	}
	return c.JSON(fiber.Map{"success": true, "id": id})
}

func UpdateSchoolAPI(c *fiber.Ctx) error {
	var school models.SwimSchool
	if err := c.BodyParser(&school); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	school.Name = services.Sanitize(school.Name)
	school.ContactPerson = services.Sanitize(school.ContactPerson)
	school.Notes = services.Sanitize(school.Notes)
	if school.Name == "" || !services.IsValidEmail(school.Email) {
		return c.Status(400).JSON(fiber.Map{"error": "School name and a valid email are required"})
	}

	if err := store.UpdateSwimSchool(c.Params("id"), &school, auth.Actor(c)); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Swim school not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func RecordSchoolPaymentAPI(c *fiber.Ctx) error {
	var payment models.SchoolPayment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	payment.SchoolID = c.Params("id")
	payment.Notes = services.Sanitize(payment.Notes)
	if payment.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	payment.CreatedBy = auth.Actor(c)

	id, err := store.InsertSchoolPayment(&payment)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}
	return c.JSON(fiber.Map{"success": true, "id": id})
}
