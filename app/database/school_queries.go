package database

import (
	"fmt"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// InsertSwimSchool creates a partner school record.
func (s *Store) InsertSwimSchool(school *models.SwimSchool) (string, error) {
	var id string
	query := `INSERT INTO swim_schools (name, contact_person, email, phone, address, city, state_zip,
			  capacity, rate_per_lesson, status, accepting_students, notes, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`

	err := s.db.QueryRow(query, school.Name, school.ContactPerson, school.Email, school.Phone,
		school.Address, school.City, school.StateZip, school.Capacity, school.RatePerLesson,
		school.Status, school.AcceptingStudents, school.Notes, school.CreatedBy).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert swim school: %w", err)
	}
	return id, nil
}

// UpdateSwimSchool rewrites a school's fields.
func (s *Store) UpdateSwimSchool(id string, school *models.SwimSchool, actor string) error {
	query := `UPDATE swim_schools SET name = $1, contact_person = $2, email = $3, phone = $4,
			  address = $5, city = $6, state_zip = $7, capacity = $8, rate_per_lesson = $9,
			  status = $10, accepting_students = $11, notes = $12, updated_at = NOW(), updated_by = $13
			  WHERE id = $14`

	result, err := s.db.Exec(query, school.Name, school.ContactPerson, school.Email, school.Phone,
		school.Address, school.City, school.StateZip, school.Capacity, school.RatePerLesson,
		school.Status, school.AcceptingStudents, school.Notes, actor, id)
	if err != nil {
		return fmt.Errorf("failed to update swim school: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("swim school not found")
	}
	return nil
}

// CountSwimSchools returns the number of partner schools.
func (s *Store) CountSwimSchools() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM swim_schools`).Scan(&count)
	return count, err
}

// InsertSchoolPayment records a payout to a partner school.
func (s *Store) InsertSchoolPayment(p *models.SchoolPayment) (string, error) {
	var id string
	query := `INSERT INTO school_payments (school_id, amount, payment_date, application_id, payment_method, reference, notes, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := s.db.QueryRow(query, p.SchoolID, p.Amount, p.PaymentDate, p.ApplicationID,
		p.PaymentMethod, p.Reference, p.Notes, p.CreatedBy).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert school payment: %w", err)
	}
	return id, nil
}
