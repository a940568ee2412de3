package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

const settingsKey = "general"

// GetSettings loads the single general settings document, returning defaults
// when it has never been written.
func (s *Store) GetSettings() (*models.AdminSettings, error) {
	var settings models.AdminSettings
	query := `SELECT available_funds, low_funds_threshold, progress_reminder_enabled, progress_reminder_days,
			  updated_at, COALESCE(updated_by, '') FROM admin_settings WHERE id = $1`

	err := s.db.QueryRow(query, settingsKey).Scan(&settings.AvailableFunds, &settings.LowFundsThreshold,
		&settings.ProgressReminderEnabled, &settings.ProgressReminderDays, &settings.UpdatedAt, &settings.UpdatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.AdminSettings{LowFundsThreshold: 500, ProgressReminderDays: 14}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &settings, nil
}

// UpsertSettings merges the provided settings into the general document.
func (s *Store) UpsertSettings(settings *models.AdminSettings, actor string) error {
	query := `INSERT INTO admin_settings (id, available_funds, low_funds_threshold, progress_reminder_enabled,
			  progress_reminder_days, updated_at, updated_by)
			  VALUES ($1, $2, $3, $4, $5, NOW(), $6)
			  ON CONFLICT (id) DO UPDATE SET available_funds = EXCLUDED.available_funds,
			  low_funds_threshold = EXCLUDED.low_funds_threshold,
			  progress_reminder_enabled = EXCLUDED.progress_reminder_enabled,
			  progress_reminder_days = EXCLUDED.progress_reminder_days,
			  updated_at = NOW(), updated_by = EXCLUDED.updated_by`

	_, err := s.db.Exec(query, settingsKey, settings.AvailableFunds, settings.LowFundsThreshold,
		settings.ProgressReminderEnabled, settings.ProgressReminderDays, actor)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// LastReminderAt returns when the most recent reminder of a type was sent for
// an application, or nil when none was.
func (s *Store) LastReminderAt(applicationID, reminderType string) (*time.Time, error) {
	var at time.Time
	query := `SELECT created_at FROM scheduled_reminders WHERE application_id = $1 AND type = $2
			  ORDER BY created_at DESC LIMIT 1`
	err := s.db.QueryRow(query, applicationID, reminderType).Scan(&at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &at, nil
}

// InsertReminder records that a reminder was sent.
func (s *Store) InsertReminder(applicationID, reminderType, email string) error {
	_, err := s.db.Exec(`INSERT INTO scheduled_reminders (application_id, type, email) VALUES ($1, $2, $3)`,
		applicationID, reminderType, email)
	if err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}
	return nil
}
