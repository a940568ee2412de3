package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

const waitlistEmailSubject = "Good News! Scholarship Funds Available"

// WaitlistService maintains the admission queue for applications waiting on
// funds.
type WaitlistService struct {
	entries   WaitlistStore
	apps      ApplicationStore
	lifecycle *LifecycleService
	logs      EmailLogStore
	mailer    Mailer
}

func NewWaitlistService(entries WaitlistStore, apps ApplicationStore, lifecycle *LifecycleService, logs EmailLogStore, mailer Mailer) *WaitlistService {
	return &WaitlistService{entries: entries, apps: apps, lifecycle: lifecycle, logs: logs, mailer: mailer}
}

// Add queues an application, assigning the next position. An application
// can be queued at most once.
func (s *WaitlistService) Add(applicationID, reason, priority, notes, actor string) (*models.WaitlistEntry, error) {
	if applicationID == "" {
		return nil, fmt.Errorf("%w: application ID required", ErrInvalidArgument)
	}

	if _, err := s.entries.FindWaitlistEntryByApplication(applicationID); err == nil {
		return nil, fmt.Errorf("%w: application already on waitlist", ErrAlreadyExists)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	entry := &models.WaitlistEntry{
		ApplicationID: applicationID,
		Reason:        Sanitize(reason),
		Priority:      priority,
		Notes:         Sanitize(notes),
		AddedBy:       actor,
	}
	if entry.Reason == "" {
		entry.Reason = "insufficient_funds"
	}
	if entry.Priority == "" {
		entry.Priority = "normal"
	}

	id, position, err := s.entries.InsertWaitlistEntry(entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	entry.Position = position
	return entry, nil
}

// Remove deletes an entry. Removing an absent entry is a no-op.
func (s *WaitlistService) Remove(waitlistID string) error {
	if waitlistID == "" {
		return fmt.Errorf("%w: waitlist ID required", ErrInvalidArgument)
	}
	return s.entries.DeleteWaitlistEntry(waitlistID)
}

// Process promotes a waitlisted application: best-effort funds-available
// email, entry removal, then transition to under_review. The entry is
// removed and the application updated even when the email fails.
func (s *WaitlistService) Process(waitlistID, actor string) error {
	entry, err := s.entries.GetWaitlistEntry(waitlistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: waitlist entry %s", ErrNotFound, waitlistID)
		}
		return err
	}

	app, err := s.apps.GetApplication(entry.ApplicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: application %s", ErrNotFound, entry.ApplicationID)
		}
		return err
	}

	if email := app.ParentInfo.Email; IsValidEmail(email) {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>We're excited to let you know that scholarship funds are now available for your application!</p>
			<p>Your application has been moved from our waitlist and is now being processed. We will be in touch shortly with next steps.</p>
			<p>Thank you for your patience!</p>
			<p>Best wishes,<br><strong>Make A Splash Foundation Team</strong></p>`,
			displayName(app.ParentInfo.FirstName))

		if err := s.mailer.Send(email, waitlistEmailSubject, BrandedHTML("Great News!", body)); err != nil {
			log.Printf("Error sending waitlist notification to %s: %v", email, err)
		} else if err := s.logs.InsertEmailLog(&models.EmailLogEntry{
			Recipient: email,
			Subject:   waitlistEmailSubject,
			Type:      models.EmailTypeWaitlist,
			Status:    models.EmailSent,
		}); err != nil {
			log.Printf("Failed to log waitlist email: %v", err)
		}
	}

	if err := s.entries.DeleteWaitlistEntry(waitlistID); err != nil {
		return err
	}

	// Target state is not approved/denied, so no auto-template fires.
	return s.lifecycle.UpdateStatus(entry.ApplicationID, models.StatusUnderReview, actor,
		"Moved from waitlist - funds available", nil)
}

// CheckFundsThreshold logs when available funds clear the configured
// threshold while applications are waiting. Promotion stays a manual admin
// action.
func (s *WaitlistService) CheckFundsThreshold(availableFunds, threshold float64) {
	if availableFunds < threshold {
		return
	}
	waiting, err := s.entries.HasWaitlistEntries()
	if err != nil {
		log.Printf("Failed to check waitlist: %v", err)
		return
	}
	if waiting {
		log.Println("Funds available and waitlist exists - admin should process waitlist")
	}
}

func displayName(firstName string) string {
	if firstName == "" {
		return "Parent/Guardian"
	}
	return firstName
}
