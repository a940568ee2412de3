package public

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/config"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
	"github.com/cyntel-intelligence/make-a-splash-foundation/app/services"
)

func ContactAPI(c *fiber.Ctx) error {
	type ContactRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Subject  string `json:"subject"`
		Message  string `json:"message"`
		Honeypot string `json:"_honeypot"`
	}

	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Honeypot != "" {
		return c.JSON(fiber.Map{"success": true})
	}

	req.Name = services.Sanitize(req.Name)
	req.Email = services.Sanitize(req.Email)
	req.Subject = services.Sanitize(req.Subject)
	req.Message = services.Sanitize(req.Message)

	if req.Name == "" || req.Message == "" || !services.IsValidEmail(req.Email) {
		return c.Status(400).JSON(fiber.Map{"error": "Name, valid email and message are required"})
	}
	if len(req.Name) > 200 || len(req.Subject) > 500 || len(req.Message) > 5000 {
		return c.Status(400).JSON(fiber.Map{"error": "Message too long"})
	}

	if !limiter.Allow("contact_"+req.Email, 3, 10*time.Minute) {
		return c.Status(429).JSON(fiber.Map{"error": "Too many messages. Please try again later."})
	}

	if _, err := store.InsertContactSubmission(&models.ContactSubmission{
		Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message,
	}); err != nil {
		log.Printf("Failed to store contact submission: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send message"})
	}

	subject := req.Subject
	if subject == "" {
		subject = "New Contact Form Message"
	}
	body := fmt.Sprintf(`
		<p><strong>From:</strong> %s (%s)</p>
		<p><strong>Subject:</strong> %s</p>
		<p>%s</p>`,
		req.Name, req.Email, subject, services.TextToHTML(req.Message))

	// Reply-To lets staff answer the sender directly from their inbox.
	if err := mailer.WithReplyTo(req.Email).Send(config.AppConfig.AdminEmail, "Contact Form: "+subject,
		services.BrandedHTML("Contact Form", body)); err != nil {
		log.Printf("Error relaying contact message: %v", err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Thank you for reaching out! We'll get back to you soon."})
}

func SubscribeAPI(c *fiber.Ctx) error {
	type SubscribeRequest struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Honeypot string `json:"_honeypot"`
	}

	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Honeypot != "" {
		return c.JSON(fiber.Map{"success": true})
	}

	req.Email = services.Sanitize(req.Email)
	req.Name = services.Sanitize(req.Name)
	if !services.IsValidEmail(req.Email) {
		return c.Status(400).JSON(fiber.Map{"error": "A valid email is required"})
	}

	if !limiter.Allow("newsletter_"+req.Email, 3, time.Hour) {
		return c.Status(429).JSON(fiber.Map{"error": "Too many attempts. Please try again later."})
	}

	exists, err := store.SubscriberExists(req.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to subscribe"})
	}
	if exists {
		return c.JSON(fiber.Map{"success": true, "message": "Already subscribed"})
	}

	if _, err := store.InsertSubscriber(&models.NewsletterSubscriber{
		Email: req.Email, Name: req.Name, Source: "website",
	}); err != nil {
		log.Printf("Failed to insert subscriber: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to subscribe"})
	}

	sendWelcomeEmail(req.Email, req.Name)

	return c.JSON(fiber.Map{"success": true, "message": "Thanks for subscribing!"})
}

func CorporateInquiryAPI(c *fiber.Ctx) error {
	type InquiryRequest struct {
		CompanyName    string `json:"companyName"`
		ContactName    string `json:"contactName"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		InterestedTier string `json:"interestedTier"`
		Message        string `json:"message"`
		Honeypot       string `json:"_honeypot"`
	}

	var req InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Honeypot != "" {
		return c.JSON(fiber.Map{"success": true})
	}

	req.CompanyName = services.Sanitize(req.CompanyName)
	req.ContactName = services.Sanitize(req.ContactName)
	req.Email = services.Sanitize(req.Email)
	req.Phone = services.Sanitize(req.Phone)
	req.InterestedTier = services.Sanitize(req.InterestedTier)
	req.Message = services.Sanitize(req.Message)

	if req.CompanyName == "" || !services.IsValidEmail(req.Email) {
		return c.Status(400).JSON(fiber.Map{"error": "Company name and a valid email are required"})
	}
	if len(req.CompanyName) > 200 || len(req.ContactName) > 200 || len(req.Message) > 5000 {
		return c.Status(400).JSON(fiber.Map{"error": "Inquiry too long"})
	}

	if !limiter.Allow("corporate_"+req.Email, 3, time.Hour) {
		return c.Status(429).JSON(fiber.Map{"error": "Too many inquiries. Please try again later."})
	}

	if _, err := store.InsertCorporateInquiry(&models.CorporateInquiry{
		CompanyName:    req.CompanyName,
		ContactName:    req.ContactName,
		Email:          req.Email,
		Phone:          req.Phone,
		InterestedTier: req.InterestedTier,
		Message:        req.Message,
	}); err != nil {
		log.Printf("Failed to store corporate inquiry: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit inquiry"})
	}

	body := fmt.Sprintf(`
		<p><strong>Company:</strong> %s</p>
		<p><strong>Contact:</strong> %s (%s, %s)</p>
		<p><strong>Interested Tier:</strong> %s</p>
		<p>%s</p>`,
		req.CompanyName, req.ContactName, req.Email, req.Phone,
		req.InterestedTier, services.TextToHTML(req.Message))

	if err := mailer.WithReplyTo(req.Email).Send(config.AppConfig.AdminEmail,
		"Corporate Partnership Inquiry: "+req.CompanyName,
		services.BrandedHTML("Partnership Inquiry", body)); err != nil {
		log.Printf("Error relaying corporate inquiry: %v", err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Thank you! Our partnerships team will be in touch."})
}

// sendWelcomeEmail greets a new subscriber, best-effort.
func sendWelcomeEmail(email, name string) {
	if name == "" {
		name = "Friend"
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to the Make A Splash Foundation community! You'll now receive updates on our mission to make swim lessons accessible to every child.</p>
		<p>Thank you for joining us!</p>
		<p>Best wishes,<br><strong>Make A Splash Foundation Team</strong></p>`, name)

	if err := mailer.Send(email, "Welcome to Make A Splash Foundation!",
		services.BrandedHTML("Welcome Aboard!", body)); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}

// DonationReceivedAPI lets the donation page trigger a receipt for payments
// completed outside the webhook path (e.g. PayPal return redirects).
func DonationReceivedAPI(c *fiber.Ctx) error {
	type ReceiptRequest struct {
		Email         string  `json:"email"`
		Name          string  `json:"name"`
		Amount        float64 `json:"amount"`
		TransactionID string  `json:"transactionId"`
		Honeypot      string  `json:"_honeypot"`
	}

	var req ReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Honeypot != "" {
		return c.JSON(fiber.Map{"success": true})
	}

	req.Email = services.Sanitize(req.Email)
	req.Name = services.Sanitize(req.Name)
	req.TransactionID = services.Sanitize(req.TransactionID)

	if !services.IsValidEmail(req.Email) || req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "A valid email and amount are required"})
	}

	if !limiter.Allow("donation_"+req.Email, 5, time.Hour) {
		return c.Status(429).JSON(fiber.Map{"error": "Too many requests. Please try again later."})
	}

	if err := donations.SendReceipt(req.Email, req.Name, req.Amount, req.TransactionID); err != nil {
		log.Printf("Error sending manual receipt to %s: %v", req.Email, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send receipt"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Receipt sent"})
}
