package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

const applicationColumns = `id, application_id, parent_info, children, documents, status,
	award_info, notes, submitted_at, last_updated, COALESCE(updated_by, '')`

func scanApplication(row interface{ Scan(...interface{}) error }) (*models.ScholarshipApplication, error) {
	var app models.ScholarshipApplication
	var parentInfo, children, documents, notes []byte
	var awardInfo sql.NullString

	err := row.Scan(
		&app.ID, &app.ApplicationID, &parentInfo, &children, &documents, &app.Status,
		&awardInfo, &notes, &app.SubmittedAt, &app.LastUpdated, &app.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(parentInfo, &app.ParentInfo); err != nil {
		return nil, fmt.Errorf("failed to decode parent info: %w", err)
	}
	if err := json.Unmarshal(children, &app.Children); err != nil {
		return nil, fmt.Errorf("failed to decode children: %w", err)
	}
	if err := json.Unmarshal(documents, &app.Documents); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	if err := json.Unmarshal(notes, &app.Notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	if awardInfo.Valid && awardInfo.String != "" {
		app.AwardInfo = &models.AwardInfo{}
		if err := json.Unmarshal([]byte(awardInfo.String), app.AwardInfo); err != nil {
			return nil, fmt.Errorf("failed to decode award info: %w", err)
		}
	}
	return &app, nil
}

// GetApplication loads one application by its store key. Returns
// sql.ErrNoRows when absent.
func (s *Store) GetApplication(id string) (*models.ScholarshipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM scholarship_applications WHERE id = $1`
	return scanApplication(s.db.QueryRow(query, id))
}

// InsertApplication persists a new application and returns the store key.
func (s *Store) InsertApplication(app *models.ScholarshipApplication) (string, error) {
	parentInfo, err := json.Marshal(app.ParentInfo)
	if err != nil {
		return "", err
	}
	children, err := json.Marshal(app.Children)
	if err != nil {
		return "", err
	}
	if app.Documents == nil {
		app.Documents = map[string]string{}
	}
	documents, err := json.Marshal(app.Documents)
	if err != nil {
		return "", err
	}

	query := `INSERT INTO scholarship_applications (application_id, parent_info, children, documents, status)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id string
	err = s.db.QueryRow(query, app.ApplicationID, parentInfo, children, documents, app.Status).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert application: %w", err)
	}
	return id, nil
}

// ApplyStatusUpdate writes a status change in one statement: the new status,
// audit fields, an optional appended note and optional award info. Notes are
// appended, never rewritten.
func (s *Store) ApplyStatusUpdate(id string, status models.ApplicationStatus, actor string, note *models.NoteEntry, award *models.AwardInfo) error {
	query := `UPDATE scholarship_applications SET status = $1, last_updated = NOW(), updated_by = $2`
	args := []interface{}{status, actor}

	if note != nil {
		noteJSON, err := json.Marshal(note)
		if err != nil {
			return err
		}
		args = append(args, noteJSON)
		query += fmt.Sprintf(", notes = notes || $%d::jsonb", len(args))
	}
	if award != nil {
		awardJSON, err := json.Marshal(award)
		if err != nil {
			return err
		}
		args = append(args, awardJSON)
		query += fmt.Sprintf(", award_info = $%d::jsonb", len(args))
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListApplicationsByStatus returns applications in a given status, or all of
// them when status is empty.
func (s *Store) ListApplicationsByStatus(status string) ([]models.ScholarshipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM scholarship_applications`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []models.ScholarshipApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			continue
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// ListStaleActiveApplications returns active applications not updated since
// the cutoff, for the reminder sweep.
func (s *Store) ListStaleActiveApplications(cutoff time.Time) ([]models.ScholarshipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM scholarship_applications
			  WHERE status = $1 AND last_updated < $2 ORDER BY last_updated ASC`

	rows, err := s.db.Query(query, models.StatusActive, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale applications: %w", err)
	}
	defer rows.Close()

	var apps []models.ScholarshipApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			continue
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
