package postgre

import (
	"database/sql"
	"fmt"

	"personal-task-management/internal/reminder/repository"
	"personal-task-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the reminder domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("reminder/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("reminder/repository/postgre.%s", method)
}
