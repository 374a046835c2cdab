package database

import "database/sql"

// Repository provides a unified interface to all data operations.
type Repository struct {
	*KVRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		KVRepo: &KVRepo{db: db},
		db:     db,
	}
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}
