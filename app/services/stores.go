package services

import (
	"errors"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// Error kinds surfaced by the service layer. Route handlers map these onto
// HTTP status codes.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
)

// Store interfaces consumed by the services. app/database.Store implements
// all of them; tests substitute in-memory fakes. Absent records surface as
// sql.ErrNoRows from the database implementation.

type ApplicationStore interface {
	GetApplication(id string) (*models.ScholarshipApplication, error)
	ApplyStatusUpdate(id string, status models.ApplicationStatus, actor string, note *models.NoteEntry, award *models.AwardInfo) error
	ListApplicationsByStatus(status string) ([]models.ScholarshipApplication, error)
	ListStaleActiveApplications(cutoff time.Time) ([]models.ScholarshipApplication, error)
}

type WaitlistStore interface {
	GetWaitlistEntry(id string) (*models.WaitlistEntry, error)
	FindWaitlistEntryByApplication(applicationID string) (*models.WaitlistEntry, error)
	InsertWaitlistEntry(e *models.WaitlistEntry) (id string, position int, err error)
	DeleteWaitlistEntry(id string) error
	HasWaitlistEntries() (bool, error)
}

type DonationStore interface {
	DonationExists(transactionID string) (bool, error)
	InsertDonation(d *models.Donation) (id string, inserted bool, err error)
	MarkReceiptSent(id string) error
}

type TemplateStore interface {
	GetTemplate(id string) (*models.EmailTemplate, error)
	ListTemplatesByType(templateType string) ([]models.EmailTemplate, error)
}

type EmailLogStore interface {
	InsertEmailLog(e *models.EmailLogEntry) error
}

type SubscriberStore interface {
	ListSubscribers() ([]models.NewsletterSubscriber, error)
}

type SettingsStore interface {
	GetSettings() (*models.AdminSettings, error)
}

type ReminderStore interface {
	LastReminderAt(applicationID, reminderType string) (*time.Time, error)
	InsertReminder(applicationID, reminderType, email string) error
}
