package postgre

import (
	"database/sql"
	"fmt"

	"personal-task-management/internal/insight/repository"
	"personal-task-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the insight domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("insight/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("insight/repository/postgre.%s", method)
}
