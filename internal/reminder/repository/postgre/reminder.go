package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"personal-task-management/internal/model"

	repo "personal-task-management/internal/reminder/repository"
)

const reminderColumns = `id, user_id, task_id, remind_at, type, message, sent, created_at`

// CreateReminder inserts a new reminder row and returns the created entity.
func (r *implRepository) CreateReminder(ctx context.Context, opt repo.CreateReminderOptions) (model.Reminder, error) {
	query := fmt.Sprintf(`
		INSERT INTO reminders (id, user_id, task_id, remind_at, type, message, sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING %s`, reminderColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.TaskID, opt.RemindAt, opt.Type, opt.Message,
	)

	rem, err := scanReminder(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, repo.ErrFailedToInsert
	}
	return rem, nil
}

// GetOneReminder returns the zero-value Reminder when no row matches.
func (r *implRepository) GetOneReminder(ctx context.Context, opt repo.GetOneReminderOptions) (model.Reminder, error) {
	query := fmt.Sprintf("SELECT %s FROM reminders WHERE id = $1 AND user_id = $2 LIMIT 1", reminderColumns)

	rem, err := scanReminder(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReminder"), err)
		return model.Reminder{}, repo.ErrFailedToGet
	}
	return rem, nil
}

// ListReminders returns a filtered page of reminders and the total count,
// soonest remind_at first.
func (r *implRepository) ListReminders(ctx context.Context, opt repo.ListRemindersOptions) ([]model.Reminder, int, error) {
	where, args := buildReminderFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reminders WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListReminders"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM reminders WHERE %s ORDER BY remind_at ASC", reminderColumns, where)
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
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReminders"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		rem, scanErr := scanReminder(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListReminders"), scanErr)
			return nil, 0, repo.ErrFailedToList
		}
		reminders = append(reminders, rem)
	}
	return reminders, total, nil
}

// DeleteReminder removes a reminder owned by the given user.
func (r *implRepository) DeleteReminder(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM reminders WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteReminder"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// MarkSentBefore flips due unsent reminders to sent and returns them.
func (r *implRepository) MarkSentBefore(ctx context.Context, userID string, cutoff time.Time) ([]model.Reminder, error) {
	query := fmt.Sprintf(`
		UPDATE reminders
		SET sent = TRUE
		WHERE user_id = $1 AND sent = FALSE AND remind_at <= $2
		RETURNING %s`, reminderColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkSentBefore"), err)
		return nil, repo.ErrFailedToUpdate
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		rem, scanErr := scanReminder(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("MarkSentBefore"), scanErr)
			return nil, repo.ErrFailedToUpdate
		}
		reminders = append(reminders, rem)
	}
	return reminders, nil
}

func buildReminderFilter(opt repo.ListRemindersOptions) (string, []any) {
	where := "1=1"
	var args []any

	if opt.UserID != "" {
		args = append(args, opt.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if opt.TaskID != "" {
		args = append(args, opt.TaskID)
		where += fmt.Sprintf(" AND task_id = $%d", len(args))
	}
	if opt.Sent != nil {
		args = append(args, *opt.Sent)
		where += fmt.Sprintf(" AND sent = $%d", len(args))
	}
	return where, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (model.Reminder, error) {
	var rem model.Reminder
	err := row.Scan(
		&rem.ID, &rem.UserID, &rem.TaskID, &rem.RemindAt,
		&rem.Type, &rem.Message, &rem.Sent, &rem.CreatedAt,
	)
	if err != nil {
		return model.Reminder{}, err
	}
	return rem, nil
}
