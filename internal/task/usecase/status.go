package usecase

import (
	"context"
	"time"

	insightRepo "personal-task-management/internal/insight/repository"
	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	repo "personal-task-management/internal/task/repository"
)

// ToggleCompletion flips a task between completed and pending. Completing a
// task stamps CompletedAt and bumps the daily completion counter.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, id string) (task.ToggleOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCompletion GetOneTask: %v", err)
		return task.ToggleOutput{}, err
	}
	if existing.ID == "" {
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}

	status := model.StatusCompleted
	var completedAt *time.Time
	if existing.Status == model.StatusCompleted {
		status = model.StatusPending
	} else {
		now := uc.clock()
		completedAt = &now
	}

	updated, err := uc.writeStatus(ctx, sc, existing, status, completedAt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCompletion UpdateTask: %v", err)
		return task.ToggleOutput{}, err
	}

	if status == model.StatusCompleted {
		uc.recordDailyStat(ctx, sc.UserID, insightRepo.UpsertDailyStatOptions{TasksCompleted: 1})
	}
	return task.ToggleOutput{Task: updated}, nil
}

// UpdateStatus moves a task to the given lifecycle status.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (task.UpdateOutput, error) {
	if !model.ValidStatus(input.Status) {
		return task.UpdateOutput{}, task.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	if existing.Status == input.Status {
		return task.UpdateOutput{Task: existing}, nil
	}

	var completedAt *time.Time
	if input.Status == model.StatusCompleted {
		now := uc.clock()
		completedAt = &now
	}

	updated, err := uc.writeStatus(ctx, sc, existing, input.Status, completedAt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}

	if input.Status == model.StatusCompleted {
		uc.recordDailyStat(ctx, sc.UserID, insightRepo.UpsertDailyStatOptions{TasksCompleted: 1})
	}
	return task.UpdateOutput{Task: updated}, nil
}

// writeStatus persists a status transition keeping every other field intact.
func (uc *implUseCase) writeStatus(ctx context.Context, sc model.Scope, existing model.Task, status string, completedAt *time.Time) (model.Task, error) {
	return uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:                existing.ID,
		UserID:            sc.UserID,
		Title:             existing.Title,
		Description:       existing.Description,
		Status:            status,
		Priority:          existing.Priority,
		Tags:              existing.Tags,
		Category:          existing.Category,
		Location:          existing.Location,
		Notes:             existing.Notes,
		DueDate:           existing.DueDate,
		DueTime:           existing.DueTime,
		EstimatedDuration: existing.EstimatedDuration,
		ActualDuration:    existing.ActualDuration,
		CompletedAt:       completedAt,
	})
}
