package emails

import (
	"database/sql"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

func ListTemplatesAPI(c *fiber.Ctx) error {
	templates, err := store.ListTemplatesByType(c.Query("type"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to list templates"})
	}
	if templates == nil {
		templates = []models.EmailTemplate{}
	}
	return c.JSON(fiber.Map{"success": true, "templates": templates})
}

func CreateTemplateAPI(c *fiber.Ctx) error {
	var t models.EmailTemplate
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if t.Name == "" || t.Subject == "" || t.Body == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name, subject and body are required"})
	}
	if t.Type == "" {
		t.Type = string(models.EmailTypeCustom)
	}

	id, err := store.InsertTemplate(&t)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create template"})
	}
	return c.JSON(fiber.Map{"success": true, "id": id})
}

func UpdateTemplateAPI(c *fiber.Ctx) error {
	var t models.EmailTemplate
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	t.ID = c.Params("id")
	if t.Name == "" || t.Subject == "" || t.Body == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name, subject and body are required"})
	}

	if err := store.UpdateTemplate(&t); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Template not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func DeleteTemplateAPI(c *fiber.Ctx) error {
	if err := store.DeleteTemplate(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete template"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// SendTemplatedEmailAPI sends one template to one application's parent,
// rendered with that application's data.
func SendTemplatedEmailAPI(c *fiber.Ctx) error {
	type SendRequest struct {
		ApplicationID string `json:"applicationId"`
		TemplateID    string `json:"templateId"`
		CustomSubject string `json:"customSubject"`
	}

	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ApplicationID == "" || req.TemplateID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "applicationId and templateId are required"})
	}

	app, err := store.GetApplication(req.ApplicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load application"})
	}

	template, err := store.GetTemplate(req.TemplateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Template not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load template"})
	}

	recipient := app.ParentInfo.Email
	if !services.IsValidEmail(recipient) {
		return c.Status(400).JSON(fiber.Map{"error": "Application has no valid email"})
	}

	placeholders := services.PlaceholdersFromApplication(app)
	subject := req.CustomSubject
	if subject == "" {
		subject = services.RenderTemplate(template.Subject, placeholders)
	}
	body := services.RenderTemplate(template.Body, placeholders)

	entry := &models.EmailLogEntry{
		Recipient:     recipient,
		Subject:       subject,
		TemplateID:    template.ID,
		Type:          models.EmailTypeCustom,
		Status:        models.EmailSent,
		SentBy:        auth.Actor(c),
		ApplicationID: app.ID,
	}

	sendErr := mailer.Send(recipient, subject, services.BrandedHTML("Make A Splash Foundation", services.TextToHTML(body)))
	if sendErr != nil {
		entry.Status = models.EmailFailed
		entry.Error = sendErr.Error()
	}
	if err := store.InsertEmailLog(entry); err != nil {
		log.Printf("Failed to log custom email: %v", err)
	}
	if sendErr != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send email"})
	}

	return c.JSON(fiber.Map{"success": true, "recipient": recipient})
}

func SendBulkEmailAPI(c *fiber.Ctx) error {
	type BulkRequest struct {
		TemplateID    string `json:"templateId"`
		RecipientType string `json:"recipientType"`
		CustomSubject string `json:"customSubject"`
	}

	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.TemplateID == "" || req.RecipientType == "" {
		return c.Status(400).JSON(fiber.Map{"error": "templateId and recipientType are required"})
	}

	result, err := bulk.Dispatch(req.TemplateID, req.RecipientType, req.CustomSubject, auth.Actor(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send bulk email"})
	}

	return c.JSON(fiber.Map{"success": true, "result": result})
}

func ListEmailLogsAPI(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	logs, err := store.ListEmailLogs(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to list email logs"})
	}
	if logs == nil {
		logs = []models.EmailLogEntry{}
	}
	return c.JSON(fiber.Map{"success": true, "logs": logs})
}
