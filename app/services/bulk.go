package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

const (
	bulkBatchSize  = 50
	bulkBatchDelay = 2 * time.Second
)

// BulkResult is the aggregate outcome of one campaign dispatch.
// Sent + Failed always equals Total.
type BulkResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

type bulkRecipient struct {
	email        string
	placeholders Placeholders
}

// BulkMailer fans a template out over a recipient class in throttled
// batches.
type BulkMailer struct {
	templates TemplateStore
	subs      SubscriberStore
	apps      ApplicationStore
	logs      EmailLogStore
	mailer    Mailer
	sleep     func(time.Duration)
}

func NewBulkMailer(templates TemplateStore, subs SubscriberStore, apps ApplicationStore, logs EmailLogStore, mailer Mailer) *BulkMailer {
	return &BulkMailer{
		templates: templates,
		subs:      subs,
		apps:      apps,
		logs:      logs,
		mailer:    mailer,
		sleep:     time.Sleep,
	}
}

// Dispatch resolves recipientType to a concrete recipient list, drops
// invalid and duplicate emails, and sends in batches of 50 with a pause
// between batches. Per-recipient failures are counted and never abort the
// run. One aggregate log entry is written at the end.
func (b *BulkMailer) Dispatch(templateID, recipientType, customSubject, actor string) (*BulkResult, error) {
	template, err := b.templates.GetTemplate(templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: template %s", ErrNotFound, templateID)
		}
		return nil, err
	}

	recipients, err := b.resolveRecipients(recipientType)
	if err != nil {
		return nil, err
	}

	result := &BulkResult{Total: len(recipients)}

	for i := 0; i < len(recipients); i += bulkBatchSize {
		end := i + bulkBatchSize
		if end > len(recipients) {
			end = len(recipients)
		}

		for _, r := range recipients[i:end] {
			subject := customSubject
			if subject == "" {
				subject = RenderTemplate(template.Subject, r.placeholders)
			}
			body := RenderTemplate(template.Body, r.placeholders)

			if err := b.mailer.Send(r.email, subject, BrandedHTML("Make A Splash Foundation", TextToHTML(body))); err != nil {
				log.Printf("Bulk email error for %s: %v", r.email, err)
				result.Failed++
			} else {
				result.Sent++
			}
		}

		// Pause between batches to respect transport throughput limits.
		if end < len(recipients) {
			b.sleep(bulkBatchDelay)
		}
	}

	logSubject := customSubject
	if logSubject == "" {
		logSubject = template.Subject
	}
	status := models.EmailSent
	if result.Failed > 0 {
		status = models.EmailPartial
	}
	entry := &models.EmailLogEntry{
		Recipient:  fmt.Sprintf("Bulk: %d sent, %d failed", result.Sent, result.Failed),
		Subject:    logSubject,
		TemplateID: templateID,
		Type:       models.EmailTypeBulk,
		Status:     status,
		SentBy:     actor,
		Details:    &models.BulkDetails{Sent: result.Sent, Failed: result.Failed, Total: result.Total},
	}
	if err := b.logs.InsertEmailLog(entry); err != nil {
		log.Printf("Failed to log bulk send: %v", err)
	}

	return result, nil
}

// resolveRecipients expands a recipient class, keeping the first occurrence
// of each valid email.
func (b *BulkMailer) resolveRecipients(recipientType string) ([]bulkRecipient, error) {
	var recipients []bulkRecipient

	if recipientType == "subscribers" {
		subs, err := b.subs.ListSubscribers()
		if err != nil {
			return nil, err
		}
		for _, sub := range subs {
			firstName := sub.Name
			if firstName == "" {
				firstName = "Friend"
			}
			recipients = append(recipients, bulkRecipient{
				email:        sub.Email,
				placeholders: Placeholders{FirstName: firstName, Email: sub.Email},
			})
		}
	} else {
		status := recipientType
		if status == "all_applicants" {
			status = ""
		}
		apps, err := b.apps.ListApplicationsByStatus(status)
		if err != nil {
			return nil, err
		}
		for i := range apps {
			recipients = append(recipients, bulkRecipient{
				email:        apps[i].ParentInfo.Email,
				placeholders: PlaceholdersFromApplication(&apps[i]),
			})
		}
	}

	seen := make(map[string]bool)
	kept := recipients[:0]
	for _, r := range recipients {
		if r.email == "" || !IsValidEmail(r.email) || seen[r.email] {
			continue
		}
		seen[r.email] = true
		kept = append(kept, r)
	}
	return kept, nil
}
