package database

import (
	"fmt"

	"github.com/cyntel-intelligence/make-a-splash-foundation/app/models"
)

// GetAdminUserByEmail loads a staff account for login. Returns sql.ErrNoRows
// when absent.
func (s *Store) GetAdminUserByEmail(email string) (*models.AdminUser, error) {
	var u models.AdminUser
	query := `SELECT id, email, password, COALESCE(first_name, ''), COALESCE(last_name, ''), is_admin, created_at
			  FROM admin_users WHERE email = $1`
	err := s.db.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// InsertAdminUser creates a staff account with an already-hashed password.
func (s *Store) InsertAdminUser(u *models.AdminUser) (string, error) {
	var id string
	query := `INSERT INTO admin_users (email, password, first_name, last_name, is_admin)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.QueryRow(query, u.Email, u.Password, u.FirstName, u.LastName, u.IsAdmin).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert admin user: %w", err)
	}
	return id, nil
}
