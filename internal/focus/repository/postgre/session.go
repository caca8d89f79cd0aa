package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"personal-task-management/internal/model"

	repo "personal-task-management/internal/focus/repository"
)

const sessionColumns = `id, user_id, task_id, start_time, end_time, duration_minutes,
	session_type, interruptions, notes, created_at`

// CreateSession inserts a new session row and returns the created entity.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.FocusSession, error) {
	query := fmt.Sprintf(`
		INSERT INTO focus_sessions (id, user_id, task_id, start_time, session_type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s`, sessionColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, nullString(opt.TaskID), opt.StartTime, opt.SessionType, opt.Notes,
	)

	session, err := scanSession(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.FocusSession{}, repo.ErrFailedToInsert
	}
	return session, nil
}

// GetOneSession returns the zero-value FocusSession when no row matches.
func (r *implRepository) GetOneSession(ctx context.Context, opt repo.GetOneSessionOptions) (model.FocusSession, error) {
	query := fmt.Sprintf("SELECT %s FROM focus_sessions WHERE id = $1 AND user_id = $2 LIMIT 1", sessionColumns)

	session, err := scanSession(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.FocusSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSession"), err)
		return model.FocusSession{}, repo.ErrFailedToGet
	}
	return session, nil
}

// ListSessions returns a filtered page of sessions and the total count,
// newest start_time first.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]model.FocusSession, int, error) {
	where := "user_id = $1"
	args := []any{opt.UserID}
	if opt.TaskID != "" {
		args = append(args, opt.TaskID)
		where += fmt.Sprintf(" AND task_id = $%d", len(args))
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM focus_sessions WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListSessions"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM focus_sessions WHERE %s ORDER BY start_time DESC", sessionColumns, where)
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var sessions []model.FocusSession
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSessions"), scanErr)
			return nil, 0, repo.ErrFailedToList
		}
		sessions = append(sessions, session)
	}
	return sessions, total, nil
}

// UpdateSession writes the mutable fields and returns the updated entity.
// Returns zero-value FocusSession when the (id, user) pair does not exist.
func (r *implRepository) UpdateSession(ctx context.Context, opt repo.UpdateSessionOptions) (model.FocusSession, error) {
	query := fmt.Sprintf(`
		UPDATE focus_sessions
		SET end_time = $1, duration_minutes = $2, interruptions = $3, notes = $4
		WHERE id = $5 AND user_id = $6
		RETURNING %s`, sessionColumns)

	row := r.db.QueryRowContext(ctx, query,
		nullTime(opt.EndTime), opt.DurationMinutes, opt.Interruptions, opt.Notes,
		opt.ID, opt.UserID,
	)

	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return model.FocusSession{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSession"), err)
		return model.FocusSession{}, repo.ErrFailedToUpdate
	}
	return session, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func scanSession(row rowScanner) (model.FocusSession, error) {
	var (
		session model.FocusSession
		taskID  sql.NullString
		endTime sql.NullTime
	)

	err := row.Scan(
		&session.ID, &session.UserID, &taskID, &session.StartTime, &endTime,
		&session.DurationMinutes, &session.SessionType, &session.Interruptions,
		&session.Notes, &session.CreatedAt,
	)
	if err != nil {
		return model.FocusSession{}, err
	}

	session.TaskID = taskID.String
	if endTime.Valid {
		session.EndTime = &endTime.Time
	}
	return session, nil
}
