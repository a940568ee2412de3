package services

import (
	"fmt"
	"log"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

const (
	progressReminderType    = "progress_update"
	reminderRepeatSuppress  = 7 * 24 * time.Hour
	progressReminderSubject = "Swim Lesson Progress Update Request"
)

// ReminderService nudges parents of active scholarships that have gone quiet
// to report lesson progress.
type ReminderService struct {
	apps      ApplicationStore
	reminders ReminderStore
	settings  SettingsStore
	logs      EmailLogStore
	mailer    Mailer
	now       func() time.Time
}

func NewReminderService(apps ApplicationStore, reminders ReminderStore, settings SettingsStore, logs EmailLogStore, mailer Mailer) *ReminderService {
	return &ReminderService{
		apps:      apps,
		reminders: reminders,
		settings:  settings,
		logs:      logs,
		mailer:    mailer,
		now:       time.Now,
	}
}

// RunSweep sends progress reminders for active applications untouched longer
// than the configured reminder window. An application already reminded within
// the past week is skipped. Returns how many reminders went out.
func (s *ReminderService) RunSweep() (int, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return 0, err
	}
	if !settings.ProgressReminderEnabled {
		return 0, nil
	}

	days := settings.ProgressReminderDays
	if days <= 0 {
		days = 14
	}
	cutoff := s.now().AddDate(0, 0, -days)

	apps, err := s.apps.ListStaleActiveApplications(cutoff)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range apps {
		app := &apps[i]
		if app.AwardInfo != nil && app.AwardInfo.TotalLessons > 0 &&
			app.AwardInfo.LessonsCompleted >= app.AwardInfo.TotalLessons {
			continue
		}
		email := app.ParentInfo.Email
		if !IsValidEmail(email) {
			continue
		}

		last, err := s.reminders.LastReminderAt(app.ID, progressReminderType)
		if err != nil {
			log.Printf("Failed to check reminder history for %s: %v", app.ID, err)
			continue
		}
		if last != nil && s.now().Sub(*last) < reminderRepeatSuppress {
			continue
		}

		if err := s.sendProgressReminder(app); err != nil {
			log.Printf("Error sending progress reminder to %s: %v", email, err)
			continue
		}
		if err := s.reminders.InsertReminder(app.ID, progressReminderType, email); err != nil {
			log.Printf("Failed to record reminder for %s: %v", app.ID, err)
		}
		if err := s.logs.InsertEmailLog(&models.EmailLogEntry{
			Recipient:     email,
			Subject:       progressReminderSubject,
			Type:          models.EmailTypeReminder,
			Status:        models.EmailSent,
			ApplicationID: app.ID,
		}); err != nil {
			log.Printf("Failed to log reminder email: %v", err)
		}
		sent++
	}

	if sent > 0 {
		log.Printf("Sent %d progress reminders", sent)
	}
	return sent, nil
}

func (s *ReminderService) sendProgressReminder(app *models.ScholarshipApplication) error {
	childName := ""
	if len(app.Children) > 0 {
		childName = app.Children[0].Name
	}
	if childName == "" {
		childName = "your child"
	}

	progressLine := ""
	if app.AwardInfo != nil && app.AwardInfo.TotalLessons > 0 {
		progressLine = fmt.Sprintf("<p>Our records show <strong>%d of %d</strong> lessons completed so far.</p>",
			app.AwardInfo.LessonsCompleted, app.AwardInfo.TotalLessons)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We hope %s is enjoying their swim lessons! We'd love to hear how things are going.</p>
		%s
		<p>Please reply to this email with a quick update on lesson progress. Your updates help us make sure every scholarship is making a splash!</p>
		<p>Thank you,<br><strong>Make A Splash Foundation Team</strong></p>`,
		displayName(app.ParentInfo.FirstName), childName, progressLine)

	return s.mailer.Send(app.ParentInfo.Email, progressReminderSubject, BrandedHTML("Progress Check-In", body))
}
