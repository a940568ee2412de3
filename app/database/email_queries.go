package database

import (
	"encoding/json"
	"fmt"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// GetTemplate loads one email template. Returns sql.ErrNoRows when absent.
func (s *Store) GetTemplate(id string) (*models.EmailTemplate, error) {
	var t models.EmailTemplate
	query := `SELECT id, name, type, subject, body, created_at, updated_at FROM email_templates WHERE id = $1`
	err := s.db.QueryRow(query, id).Scan(&t.ID, &t.Name, &t.Type, &t.Subject, &t.Body, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTemplatesByType returns templates of a type, oldest first, or all
// templates when templateType is empty.
func (s *Store) ListTemplatesByType(templateType string) ([]models.EmailTemplate, error) {
	query := `SELECT id, name, type, subject, body, created_at, updated_at FROM email_templates`
	var args []interface{}
	if templateType != "" {
		query += ` WHERE type = $1`
		args = append(args, templateType)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.EmailTemplate
	for rows.Next() {
		var t models.EmailTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.Subject, &t.Body, &t.CreatedAt, &t.UpdatedAt); err != nil {
			continue
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// InsertTemplate creates a template and returns its id.
func (s *Store) InsertTemplate(t *models.EmailTemplate) (string, error) {
	var id string
	query := `INSERT INTO email_templates (name, type, subject, body) VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.db.QueryRow(query, t.Name, t.Type, t.Subject, t.Body).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert template: %w", err)
	}
	return id, nil
}

// UpdateTemplate rewrites a template's fields.
func (s *Store) UpdateTemplate(t *models.EmailTemplate) error {
	query := `UPDATE email_templates SET name = $1, type = $2, subject = $3, body = $4, updated_at = NOW() WHERE id = $5`
	result, err := s.db.Exec(query, t.Name, t.Type, t.Subject, t.Body, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("template not found")
	}
	return nil
}

// DeleteTemplate removes a template.
func (s *Store) DeleteTemplate(id string) error {
	_, err := s.db.Exec(`DELETE FROM email_templates WHERE id = $1`, id)
	return err
}

// InsertEmailLog appends one audit record. Log entries are never mutated
// after creation.
func (s *Store) InsertEmailLog(e *models.EmailLogEntry) error {
	var details []byte
	if e.Details != nil {
		var err error
		details, err = json.Marshal(e.Details)
		if err != nil {
			return err
		}
	}

	query := `INSERT INTO email_logs (recipient, subject, template_id, type, status, error, sent_by, application_id, details)
			  VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9)`

	_, err := s.db.Exec(query, e.Recipient, e.Subject, e.TemplateID, e.Type, e.Status, e.Error, e.SentBy, e.ApplicationID, details)
	if err != nil {
		return fmt.Errorf("failed to insert email log: %w", err)
	}
	return nil
}

// ListEmailLogs returns the most recent log entries for the dashboard.
func (s *Store) ListEmailLogs(limit int) ([]models.EmailLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT id, recipient, subject, COALESCE(template_id, ''), type, status, COALESCE(error, ''),
			  sent_at, COALESCE(sent_by, ''), COALESCE(application_id, ''), details
			  FROM email_logs ORDER BY sent_at DESC LIMIT $1`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}
	defer rows.Close()

	var logs []models.EmailLogEntry
	for rows.Next() {
		var e models.EmailLogEntry
		var details []byte
		if err := rows.Scan(&e.ID, &e.Recipient, &e.Subject, &e.TemplateID, &e.Type, &e.Status, &e.Error,
			&e.SentAt, &e.SentBy, &e.ApplicationID, &details); err != nil {
			continue
		}
		if len(details) > 0 {
			e.Details = &models.BulkDetails{}
			if err := json.Unmarshal(details, e.Details); err != nil {
				e.Details = nil
			}
		}
		logs = append(logs, e)
	}
	return logs, rows.Err()
}
