package database

import (
	"fmt"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// ListApplicationsForYear returns applications submitted in a calendar year.
func (s *Store) ListApplicationsForYear(year int) ([]models.ScholarshipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM scholarship_applications
			  WHERE submitted_at >= make_date($1, 1, 1) AND submitted_at < make_date($1 + 1, 1, 1)
			  ORDER BY submitted_at ASC`

	rows, err := s.db.Query(query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for year: %w", err)
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
