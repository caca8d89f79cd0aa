package usecase

import (
	"context"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	repo "personal-task-management/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update to an existing task. Empty input fields
// keep their current value; ClearDueDate unsets the date explicitly.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	if input.Priority != "" && !model.ValidPriority(input.Priority) {
		return task.UpdateOutput{}, task.ErrInvalidPriority
	}
	if input.Title != "" && strings.TrimSpace(input.Title) == "" {
		return task.UpdateOutput{}, task.ErrEmptyTitle
	}

	dueDate := existing.DueDate
	if input.ClearDueDate {
		dueDate = nil
	} else if input.DueDate != nil {
		dueDate = input.DueDate
	}

	tags := existing.Tags
	if len(input.Tags) > 0 {
		tags = input.Tags
	}

	duration := existing.EstimatedDuration
	if input.EstimatedDuration > 0 {
		duration = input.EstimatedDuration
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:                existing.ID,
		UserID:            sc.UserID,
		Title:             uc.coalesce(strings.TrimSpace(input.Title), existing.Title),
		Description:       uc.coalesce(input.Description, existing.Description),
		Status:            existing.Status,
		Priority:          uc.coalesce(input.Priority, existing.Priority),
		Tags:              tags,
		Category:          uc.coalesce(input.Category, existing.Category),
		Location:          uc.coalesce(input.Location, existing.Location),
		Notes:             uc.coalesce(input.Notes, existing.Notes),
		DueDate:           dueDate,
		DueTime:           uc.coalesce(input.DueTime, existing.DueTime),
		EstimatedDuration: duration,
		ActualDuration:    existing.ActualDuration,
		CompletedAt:       existing.CompletedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
