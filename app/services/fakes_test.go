package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// fakeStore is an in-memory stand-in for database.Store, satisfying every
// store interface the services consume.
type fakeStore struct {
	apps      map[string]*models.ScholarshipApplication
	waitlist  map[string]*models.WaitlistEntry
	nextPos   int
	nextID    int
	donations map[string]*models.Donation
	templates []models.EmailTemplate
	logs      []models.EmailLogEntry
	subs      []models.NewsletterSubscriber
	settings  *models.AdminSettings
	reminders map[string]time.Time

	failInsertLog error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		apps:      make(map[string]*models.ScholarshipApplication),
		waitlist:  make(map[string]*models.WaitlistEntry),
		donations: make(map[string]*models.Donation),
		reminders: make(map[string]time.Time),
		settings:  &models.AdminSettings{LowFundsThreshold: 500, ProgressReminderDays: 14},
	}
}

func (f *fakeStore) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeStore) GetApplication(id string) (*models.ScholarshipApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *app
	return &clone, nil
}

func (f *fakeStore) ApplyStatusUpdate(id string, status models.ApplicationStatus, actor string, note *models.NoteEntry, award *models.AwardInfo) error {
	app, ok := f.apps[id]
	if !ok {
		return sql.ErrNoRows
	}
	app.Status = status
	app.UpdatedBy = actor
	app.LastUpdated = time.Now()
	if note != nil {
		app.Notes = append(app.Notes, *note)
	}
	if award != nil {
		app.AwardInfo = award
	}
	return nil
}

func (f *fakeStore) ListApplicationsByStatus(status string) ([]models.ScholarshipApplication, error) {
	var out []models.ScholarshipApplication
	for _, app := range f.apps {
		if status == "" || string(app.Status) == status {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeStore) ListStaleActiveApplications(cutoff time.Time) ([]models.ScholarshipApplication, error) {
	var out []models.ScholarshipApplication
	for _, app := range f.apps {
		if app.Status == models.StatusActive && app.LastUpdated.Before(cutoff) {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeStore) GetWaitlistEntry(id string) (*models.WaitlistEntry, error) {
	e, ok := f.waitlist[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *e
	return &clone, nil
}

func (f *fakeStore) FindWaitlistEntryByApplication(applicationID string) (*models.WaitlistEntry, error) {
	for _, e := range f.waitlist {
		if e.ApplicationID == applicationID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) InsertWaitlistEntry(e *models.WaitlistEntry) (string, int, error) {
	f.nextPos++
	id := f.newID("wl")
	stored := *e
	stored.ID = id
	stored.Position = f.nextPos
	f.waitlist[id] = &stored
	return id, stored.Position, nil
}

func (f *fakeStore) DeleteWaitlistEntry(id string) error {
	delete(f.waitlist, id)
	return nil
}

func (f *fakeStore) HasWaitlistEntries() (bool, error) {
	return len(f.waitlist) > 0, nil
}

func (f *fakeStore) DonationExists(transactionID string) (bool, error) {
	_, ok := f.donations[transactionID]
	return ok, nil
}

func (f *fakeStore) InsertDonation(d *models.Donation) (string, bool, error) {
	if _, ok := f.donations[d.TransactionID]; ok {
		return "", false, nil
	}
	id := f.newID("don")
	stored := *d
	stored.ID = id
	f.donations[d.TransactionID] = &stored
	return id, true, nil
}

func (f *fakeStore) MarkReceiptSent(id string) error {
	for _, d := range f.donations {
		if d.ID == id {
			d.ReceiptSent = true
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeStore) GetTemplate(id string) (*models.EmailTemplate, error) {
	for i := range f.templates {
		if f.templates[i].ID == id {
			clone := f.templates[i]
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) ListTemplatesByType(templateType string) ([]models.EmailTemplate, error) {
	var out []models.EmailTemplate
	for _, t := range f.templates {
		if templateType == "" || t.Type == templateType {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertEmailLog(e *models.EmailLogEntry) error {
	if f.failInsertLog != nil {
		return f.failInsertLog
	}
	f.logs = append(f.logs, *e)
	return nil
}

func (f *fakeStore) ListSubscribers() ([]models.NewsletterSubscriber, error) {
	return append([]models.NewsletterSubscriber(nil), f.subs...), nil
}

func (f *fakeStore) GetSettings() (*models.AdminSettings, error) {
	clone := *f.settings
	return &clone, nil
}

func (f *fakeStore) LastReminderAt(applicationID, reminderType string) (*time.Time, error) {
	at, ok := f.reminders[applicationID+"/"+reminderType]
	if !ok {
		return nil, nil
	}
	return &at, nil
}

func (f *fakeStore) InsertReminder(applicationID, reminderType, email string) error {
	f.reminders[applicationID+"/"+reminderType] = time.Now()
	return nil
}

// fakeMailer records sends and can be told to fail for specific recipients.
type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]bool
	failAll bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]bool)}
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.failAll || m.failFor[to] {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}
