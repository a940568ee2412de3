package applications

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/config"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/routes/auth"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

func SubmitApplicationAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		ParentInfo models.ParentInfo `json:"parentInfo"`
		Children   []models.Child    `json:"children"`
		Documents  map[string]string `json:"documents"`
		Honeypot   string            `json:"_honeypot"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	// Bots fill hidden fields; answer success and record nothing.
	if req.Honeypot != "" {
		return c.JSON(fiber.Map{"success": true})
	}

	req.ParentInfo.FirstName = services.Sanitize(req.ParentInfo.FirstName)
	req.ParentInfo.LastName = services.Sanitize(req.ParentInfo.LastName)
	req.ParentInfo.Email = services.Sanitize(req.ParentInfo.Email)
	req.ParentInfo.Phone = services.Sanitize(req.ParentInfo.Phone)

	if req.ParentInfo.FirstName == "" || !services.IsValidEmail(req.ParentInfo.Email) {
		return c.Status(400).JSON(fiber.Map{"error": "Valid name and email are required"})
	}
	if len(req.Children) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "At least one child is required"})
	}
	for i := range req.Children {
		req.Children[i].Name = services.Sanitize(req.Children[i].Name)
		req.Children[i].DOB = services.Sanitize(req.Children[i].DOB)
		if req.Children[i].Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Each child needs a name"})
		}
	}

	if !limiter.Allow("application_"+req.ParentInfo.Email, 3, time.Hour) {
		return c.Status(429).JSON(fiber.Map{"error": "Too many submissions. Please try again later."})
	}

	app := &models.ScholarshipApplication{
		ApplicationID: newApplicationID(),
		ParentInfo:    req.ParentInfo,
		Children:      req.Children,
		Documents:     req.Documents,
		Status:        models.StatusPending,
	}

	id, err := store.InsertApplication(app)
	if err != nil {
		log.Printf("Failed to insert application: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit application"})
	}

	sendSubmissionEmails(app)

	return c.JSON(fiber.Map{
		"success":       true,
		"id":            id,
		"applicationId": app.ApplicationID,
	})
}

func ListApplicationsAPI(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !models.ApplicationStatus(status).Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown status filter"})
	}

	apps, err := store.ListApplicationsByStatus(status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to list applications"})
	}
	if apps == nil {
		apps = []models.ScholarshipApplication{}
	}
	return c.JSON(fiber.Map{"success": true, "applications": apps})
}

func GetApplicationAPI(c *fiber.Ctx) error {
	app, err := store.GetApplication(c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load application"})
	}
	return c.JSON(fiber.Map{"success": true, "application": app})
}

func UpdateApplicationStatusAPI(c *fiber.Ctx) error {
	type AwardRequest struct {
		SwimSchool         string      `json:"swimSchool"`
		Amount             interface{} `json:"amount"`
		AwardDate          string      `json:"awardDate"`
		TotalLessons       interface{} `json:"totalLessons"`
		LessonsCompleted   interface{} `json:"lessonsCompleted"`
		ExpectedCompletion string      `json:"expectedCompletion"`
		Notes              string      `json:"notes"`
	}
	type UpdateRequest struct {
		Status string        `json:"status"`
		Note   string        `json:"note"`
		Award  *AwardRequest `json:"awardInfo"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	var award *models.AwardInfo
	if req.Award != nil {
		award = &models.AwardInfo{
			SwimSchool:         req.Award.SwimSchool,
			Amount:             coerceFloat(req.Award.Amount),
			AwardDate:          req.Award.AwardDate,
			TotalLessons:       coerceInt(req.Award.TotalLessons),
			LessonsCompleted:   coerceInt(req.Award.LessonsCompleted),
			ExpectedCompletion: req.Award.ExpectedCompletion,
			Notes:              req.Award.Notes,
		}
	}

	err := lifecycle.UpdateStatus(c.Params("id"), models.ApplicationStatus(req.Status), auth.Actor(c), req.Note, award)
	if err != nil {
		return c.Status(apiStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "status": req.Status})
}

func sendSubmissionEmails(app *models.ScholarshipApplication) {
	subject := "Application Received - Make A Splash Foundation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for applying to Make A Splash Foundation! We've received your scholarship application.</p>
		<p><strong>Application ID:</strong> %s</p>
		<p>Our team will review your application and follow up with next steps. Keep your application ID handy for any questions.</p>
		<p>Best wishes,<br><strong>Make A Splash Foundation Team</strong></p>`,
		app.ParentInfo.FirstName, app.ApplicationID)

	if err := mailer.Send(app.ParentInfo.Email, subject, services.BrandedHTML("Application Received", body)); err != nil {
		log.Printf("Error sending application confirmation to %s: %v", app.ParentInfo.Email, err)
	}

	adminBody := fmt.Sprintf(`
		<p>A new scholarship application was submitted.</p>
		<p><strong>Application ID:</strong> %s<br>
		<strong>Parent:</strong> %s %s (%s)<br>
		<strong>Children:</strong> %d</p>`,
		app.ApplicationID, app.ParentInfo.FirstName, app.ParentInfo.LastName,
		app.ParentInfo.Email, len(app.Children))

	if err := mailer.Send(config.AppConfig.AdminEmail, "New Scholarship Application: "+app.ApplicationID,
		services.BrandedHTML("New Application", adminBody)); err != nil {
		log.Printf("Error sending admin notification: %v", err)
	}
}

func newApplicationID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("MAS-%d-%s", time.Now().Year(), suffix)
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

func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func coerceInt(v interface{}) int {
	return int(coerceFloat(v))
}
