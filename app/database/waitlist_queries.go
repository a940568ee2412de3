package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

const waitlistColumns = `id, application_id, reason, priority, notes, position, added_at, COALESCE(added_by, '')`

func scanWaitlistEntry(row interface{ Scan(...interface{}) error }) (*models.WaitlistEntry, error) {
	var e models.WaitlistEntry
	err := row.Scan(&e.ID, &e.ApplicationID, &e.Reason, &e.Priority, &e.Notes, &e.Position, &e.AddedAt, &e.AddedBy)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetWaitlistEntry loads one entry by id. Returns sql.ErrNoRows when absent.
func (s *Store) GetWaitlistEntry(id string) (*models.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + ` FROM waitlist WHERE id = $1`
	return scanWaitlistEntry(s.db.QueryRow(query, id))
}

// FindWaitlistEntryByApplication finds the open entry for an application.
// Returns sql.ErrNoRows when there is none.
func (s *Store) FindWaitlistEntryByApplication(applicationID string) (*models.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + ` FROM waitlist WHERE application_id = $1 LIMIT 1`
	return scanWaitlistEntry(s.db.QueryRow(query, applicationID))
}

// InsertWaitlistEntry inserts an entry with position = current max + 1. Two
// concurrent adds can read the same MAX under READ COMMITTED, so the unique
// index on position is the arbiter: the loser's 23505 is retried with a
// fresh MAX.
func (s *Store) InsertWaitlistEntry(e *models.WaitlistEntry) (string, int, error) {
	query := `INSERT INTO waitlist (application_id, reason, priority, notes, position, added_by)
			  VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM waitlist), $5)
			  RETURNING id, position`

	var id string
	var position int
	for attempt := 0; ; attempt++ {
		err := s.db.QueryRow(query, e.ApplicationID, e.Reason, e.Priority, e.Notes, e.AddedBy).Scan(&id, &position)
		if err == nil {
			return id, position, nil
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && attempt < 3 {
			continue
		}
		return "", 0, fmt.Errorf("failed to insert waitlist entry: %w", err)
	}
}

// DeleteWaitlistEntry deletes an entry. Deleting an absent entry is not an
// error.
func (s *Store) DeleteWaitlistEntry(id string) error {
	_, err := s.db.Exec(`DELETE FROM waitlist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete waitlist entry: %w", err)
	}
	return nil
}

// HasWaitlistEntries reports whether any application is waiting.
func (s *Store) HasWaitlistEntries() (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM waitlist`).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListWaitlist returns all entries in position order.
func (s *Store) ListWaitlist() ([]models.WaitlistEntry, error) {
	rows, err := s.db.Query(`SELECT ` + waitlistColumns + ` FROM waitlist ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist: %w", err)
	}
	defer rows.Close()

	var entries []models.WaitlistEntry
	for rows.Next() {
		e, err := scanWaitlistEntry(rows)
		if err != nil {
			continue
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}
