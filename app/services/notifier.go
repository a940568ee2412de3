package services

import (
	"log"
	"strings"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// Notifier subscribes to StatusChanged events and sends the matching
// status-change email. Only transitions into approved or denied notify; a
// re-set of the same status or any other target state is ignored.
type Notifier struct {
	apps      ApplicationStore
	templates TemplateStore
	logs      EmailLogStore
	mailer    Mailer
}

func NewNotifier(apps ApplicationStore, templates TemplateStore, logs EmailLogStore, mailer Mailer) *Notifier {
	return &Notifier{apps: apps, templates: templates, logs: logs, mailer: mailer}
}

// Run consumes the event stream until it is closed.
func (n *Notifier) Run(events <-chan StatusChanged) {
	for ev := range events {
		n.HandleStatusChange(ev)
	}
}

// HandleStatusChange sends at most one notification for one event. Failures
// are logged, never retried: the status write already happened and stays.
func (n *Notifier) HandleStatusChange(ev StatusChanged) {
	if ev.From == ev.To {
		return
	}
	if ev.To != models.StatusApproved && ev.To != models.StatusDenied {
		return
	}

	app, err := n.apps.GetApplication(ev.ApplicationID)
	if err != nil {
		log.Printf("Status change notification: failed to load application %s: %v", ev.ApplicationID, err)
		return
	}

	template := n.matchStatusTemplate(string(ev.To))
	if template == nil {
		log.Println("No status change templates found")
		return
	}

	recipient := app.ParentInfo.Email
	if !IsValidEmail(recipient) {
		return
	}

	placeholders := PlaceholdersFromApplication(app)
	subject := RenderTemplate(template.Subject, placeholders)
	body := RenderTemplate(template.Body, placeholders)

	entry := &models.EmailLogEntry{
		Recipient:     recipient,
		Subject:       subject,
		TemplateID:    template.ID,
		Type:          models.EmailTypeStatusChange,
		Status:        models.EmailSent,
		ApplicationID: ev.ApplicationID,
	}

	if err := n.mailer.Send(recipient, subject, BrandedHTML("Application Update", TextToHTML(body))); err != nil {
		log.Printf("Error sending status change email to %s: %v", recipient, err)
		entry.Status = models.EmailFailed
		entry.Error = err.Error()
	}

	if err := n.logs.InsertEmailLog(entry); err != nil {
		log.Printf("Failed to log status change email: %v", err)
	}
}

// matchStatusTemplate picks the first status_change template whose name
// contains the status, falling back to the first template of the type.
func (n *Notifier) matchStatusTemplate(status string) *models.EmailTemplate {
	templates, err := n.templates.ListTemplatesByType(string(models.EmailTypeStatusChange))
	if err != nil {
		log.Printf("Failed to load status change templates: %v", err)
		return nil
	}
	if len(templates) == 0 {
		return nil
	}
	for i := range templates {
		if strings.Contains(strings.ToLower(templates[i].Name), status) {
			return &templates[i]
		}
	}
	return &templates[0]
}
