package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	repo "personal-task-management/internal/task/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns a filtered, paginated list of the user's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.Status != "" && !model.ValidStatus(input.Status) {
		return task.ListOutput{}, task.ErrInvalidStatus
	}
	if input.Priority != "" && !model.ValidPriority(input.Priority) {
		return task.ListOutput{}, task.ErrInvalidPriority
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Status:   input.Status,
		Priority: input.Priority,
		Tag:      input.Tag,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
