package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"personal-task-management/internal/model"

	repo "personal-task-management/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, status, priority, tags, category, location, notes,
	due_date, due_time, estimated_duration, actual_duration,
	voice_created, voice_confidence, ai_suggested, completed_at, created_at, updated_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, title, description, status, priority, tags, category, location, notes,
			due_date, due_time, estimated_duration,
			voice_created, voice_confidence, ai_suggested, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING %s`, taskColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.Status, opt.Priority,
		pq.Array(opt.Tags), opt.Category, opt.Location, opt.Notes,
		nullTime(opt.DueDate), opt.DueTime, opt.EstimatedDuration,
		opt.VoiceCreated, opt.VoiceConfidence, opt.AISuggested,
	)

	task, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single task by the provided filters (AND
// condition). Returns the zero-value Task when no row matches.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a filtered page of tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), scanErr)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, total, nil
}

// UpdateTask writes the full post-merge field set and returns the updated
// entity. Returns zero-value Task when the (id, user) pair does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, description = $2, status = $3, priority = $4, tags = $5,
			category = $6, location = $7, notes = $8,
			due_date = $9, due_time = $10, estimated_duration = $11, actual_duration = $12,
			completed_at = $13, updated_at = NOW()
		WHERE id = $14 AND user_id = $15
		RETURNING %s`, taskColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Status, opt.Priority, pq.Array(opt.Tags),
		opt.Category, opt.Location, opt.Notes,
		nullTime(opt.DueDate), opt.DueTime, opt.EstimatedDuration, opt.ActualDuration,
		nullTime(opt.CompletedAt), opt.ID, opt.UserID,
	)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a task owned by the given user.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task        model.Task
		tags        pq.StringArray
		dueDate     sql.NullTime
		completedAt sql.NullTime
	)

	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&tags, &task.Category, &task.Location, &task.Notes,
		&dueDate, &task.DueTime, &task.EstimatedDuration, &task.ActualDuration,
		&task.VoiceCreated, &task.VoiceConfidence, &task.AISuggested,
		&completedAt, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Tags = tags
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	return task, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
