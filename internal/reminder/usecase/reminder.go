package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/reminder"
	repo "personal-task-management/internal/reminder/repository"
	taskRepo "personal-task-management/internal/task/repository"
)

// Create schedules a reminder after verifying the target task exists and
// belongs to the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input reminder.CreateInput) (reminder.CreateOutput, error) {
	if input.RemindAt.IsZero() {
		return reminder.CreateOutput{}, reminder.ErrInvalidRemindAt
	}

	remType := input.Type
	if remType == "" {
		remType = model.ReminderTypeNotification
	}
	if !model.ValidReminderType(remType) {
		return reminder.CreateOutput{}, reminder.ErrInvalidType
	}

	t, err := uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: input.TaskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneTask: %v", err)
		return reminder.CreateOutput{}, err
	}
	if t.ID == "" {
		return reminder.CreateOutput{}, reminder.ErrTaskNotFound
	}

	message := input.Message
	if message == "" {
		message = "Reminder: " + t.Title
	}

	created, err := uc.repo.CreateReminder(ctx, repo.CreateReminderOptions{
		UserID:   sc.UserID,
		TaskID:   input.TaskID,
		RemindAt: input.RemindAt,
		Type:     remType,
		Message:  message,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateReminder: %v", err)
		return reminder.CreateOutput{}, err
	}
	return reminder.CreateOutput{Reminder: created}, nil
}

// List returns a filtered, paginated list of the user's reminders.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input reminder.ListInput) (reminder.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	reminders, total, err := uc.repo.ListReminders(ctx, repo.ListRemindersOptions{
		UserID: sc.UserID,
		TaskID: input.TaskID,
		Sent:   input.Sent,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListReminders: %v", err)
		return reminder.ListOutput{}, err
	}

	return reminder.ListOutput{
		Reminders: reminders,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// Delete removes a reminder by ID. Returns ErrReminderNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneReminder(ctx, repo.GetOneReminderOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneReminder: %v", err)
		return err
	}
	if existing.ID == "" {
		return reminder.ErrReminderNotFound
	}
	if err := uc.repo.DeleteReminder(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteReminder: %v", err)
		return err
	}
	return nil
}

// CollectDue marks the user's due unsent reminders as sent and returns
// them. One tick delivers each reminder at most once.
func (uc *implUseCase) CollectDue(ctx context.Context, sc model.Scope) (reminder.DueOutput, error) {
	due, err := uc.repo.MarkSentBefore(ctx, sc.UserID, uc.clock())
	if err != nil {
		uc.l.Errorf(ctx, "uc.CollectDue MarkSentBefore: %v", err)
		return reminder.DueOutput{}, err
	}
	return reminder.DueOutput{Reminders: due}, nil
}
