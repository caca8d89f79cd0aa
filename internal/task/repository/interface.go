package repository

import (
	"context"

	"personal-task-management/internal/model"
)

// Repository is the data store contract for the task domain.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Every method is scoped to one user; callers never see other users' rows.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// GetOneTask returns the zero-value Task (ID == "") when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)

	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
}
