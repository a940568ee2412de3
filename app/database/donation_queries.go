package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// DonationExists reports whether a donation with the external transaction id
// is already recorded.
func (s *Store) DonationExists(transactionID string) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM donations WHERE transaction_id = $1 LIMIT 1`, transactionID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertDonation records a donation with receipt_sent=false. When the unique
// constraint on transaction_id fires, the event was a near-simultaneous
// duplicate: inserted is false and err is nil.
func (s *Store) InsertDonation(d *models.Donation) (id string, inserted bool, err error) {
	query := `INSERT INTO donations (donor_email, donor_name, amount, transaction_id, payment_method, recurring, receipt_sent)
			  VALUES ($1, $2, $3, $4, $5, $6, false) RETURNING id`

	err = s.db.QueryRow(query, d.DonorEmail, d.DonorName, d.Amount, d.TransactionID, d.PaymentMethod, d.Recurring).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to insert donation: %w", err)
	}
	return id, true, nil
}

// MarkReceiptSent flips receipt_sent after a successful receipt email.
func (s *Store) MarkReceiptSent(id string) error {
	_, err := s.db.Exec(`UPDATE donations SET receipt_sent = true WHERE id = $1`, id)
	return err
}

// SumDonationsForYear totals donation amounts received in a calendar year.
func (s *Store) SumDonationsForYear(year int) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM donations
			  WHERE created_at >= make_date($1, 1, 1) AND created_at < make_date($1 + 1, 1, 1)`
	err := s.db.QueryRow(query, year).Scan(&total)
	return total, err
}
