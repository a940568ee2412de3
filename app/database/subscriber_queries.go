package database

import (
	"fmt"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// SubscriberExists reports whether an email is already subscribed.
func (s *Store) SubscriberExists(email string) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM newsletter_subscribers WHERE email = $1 LIMIT 1`, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertSubscriber adds one newsletter subscriber.
func (s *Store) InsertSubscriber(sub *models.NewsletterSubscriber) (string, error) {
	var id string
	query := `INSERT INTO newsletter_subscribers (email, name, source, imported_by)
			  VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, '')) RETURNING id`
	err := s.db.QueryRow(query, sub.Email, sub.Name, sub.Source, sub.ImportedBy).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return id, nil
}

// ListSubscribers returns every newsletter subscriber.
func (s *Store) ListSubscribers() ([]models.NewsletterSubscriber, error) {
	query := `SELECT id, email, name, subscribed_at, COALESCE(source, ''), COALESCE(imported_by, '')
			  FROM newsletter_subscribers ORDER BY subscribed_at ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []models.NewsletterSubscriber
	for rows.Next() {
		var sub models.NewsletterSubscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Name, &sub.SubscribedAt, &sub.Source, &sub.ImportedBy); err != nil {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// InsertContactSubmission stores a contact-form message for the dashboard.
func (s *Store) InsertContactSubmission(c *models.ContactSubmission) (string, error) {
	var id string
	query := `INSERT INTO contact_submissions (name, email, subject, message) VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.db.QueryRow(query, c.Name, c.Email, c.Subject, c.Message).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert contact submission: %w", err)
	}
	return id, nil
}

// InsertCorporateInquiry stores a partnership inquiry with status new.
func (s *Store) InsertCorporateInquiry(q *models.CorporateInquiry) (string, error) {
	var id string
	query := `INSERT INTO corporate_inquiries (company_name, contact_name, email, phone, interested_tier, message, status)
			  VALUES ($1, $2, $3, $4, $5, $6, 'new') RETURNING id`
	err := s.db.QueryRow(query, q.CompanyName, q.ContactName, q.Email, q.Phone, q.InterestedTier, q.Message).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert corporate inquiry: %w", err)
	}
	return id, nil
}
