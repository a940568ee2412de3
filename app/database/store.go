package database

import "database/sql"

// Store wraps the database pool with the query methods the service layer
// depends on.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *sql.DB {
	return s.db
}
