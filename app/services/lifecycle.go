package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// StatusChanged is emitted after an application's status write is durable.
// The notifier consumes these; the write path never waits on email delivery.
type StatusChanged struct {
	ApplicationID string
	From          models.ApplicationStatus
	To            models.ApplicationStatus
}

// LifecycleService owns the application status machine. UpdateStatus is the
// only mutation entry point for status; callers must not bypass it.
type LifecycleService struct {
	apps   ApplicationStore
	events chan StatusChanged
}

func NewLifecycleService(apps ApplicationStore) *LifecycleService {
	return &LifecycleService{
		apps:   apps,
		events: make(chan StatusChanged, 64),
	}
}

// Events exposes the status-change stream for the notifier subscriber.
func (s *LifecycleService) Events() <-chan StatusChanged {
	return s.events
}

// UpdateStatus validates and applies a status change, appending a note when
// one is supplied and merging award info when provided. The StatusChanged
// event is emitted only after the write succeeds.
func (s *LifecycleService) UpdateStatus(applicationID string, status models.ApplicationStatus, actor, note string, award *models.AwardInfo) error {
	if applicationID == "" {
		return fmt.Errorf("%w: application ID required", ErrInvalidArgument)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: status must be one of: %s", ErrInvalidArgument, joinStatuses())
	}

	app, err := s.apps.GetApplication(applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: application %s", ErrNotFound, applicationID)
		}
		return err
	}

	var noteEntry *models.NoteEntry
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		noteEntry = &models.NoteEntry{
			Text:         Sanitize(trimmed),
			Author:       actor,
			CreatedAt:    time.Now(),
			StatusChange: string(status),
		}
	}

	if award != nil {
		award.SwimSchool = Sanitize(award.SwimSchool)
		award.AwardDate = Sanitize(award.AwardDate)
		award.ExpectedCompletion = Sanitize(award.ExpectedCompletion)
		award.Notes = Sanitize(award.Notes)
	}

	if err := s.apps.ApplyStatusUpdate(applicationID, status, actor, noteEntry, award); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: application %s", ErrNotFound, applicationID)
		}
		return err
	}

	s.emit(StatusChanged{ApplicationID: applicationID, From: app.Status, To: status})
	return nil
}

func (s *LifecycleService) emit(ev StatusChanged) {
	select {
	case s.events <- ev:
	default:
		// Notification is best-effort; the status write is already durable.
		log.Printf("Status event queue full, dropping event for application %s", ev.ApplicationID)
	}
}

func joinStatuses() string {
	names := make([]string, len(models.ValidStatuses))
	for i, st := range models.ValidStatuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}
