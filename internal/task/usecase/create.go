package usecase

import (
	"context"
	"strings"

	insightRepo "personal-task-management/internal/insight/repository"
	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	repo "personal-task-management/internal/task/repository"
	"personal-task-management/pkg/nlparse"
)

// Create persists a manually entered task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return task.CreateOutput{}, task.ErrInvalidPriority
	}

	tags := input.Tags
	if len(tags) == 0 {
		tags = []string{nlparse.DefaultTag}
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:            sc.UserID,
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		Status:            model.StatusPending,
		Priority:          priority,
		Tags:              tags,
		Category:          input.Category,
		Location:          input.Location,
		Notes:             input.Notes,
		DueDate:           input.DueDate,
		DueTime:           input.DueTime,
		EstimatedDuration: input.EstimatedDuration,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.recordDailyStat(ctx, sc.UserID, insightRepo.UpsertDailyStatOptions{TasksCreated: 1})

	return task.CreateOutput{Task: created}, nil
}

// CreateFromVoice parses a dictated utterance and persists the result.
func (uc *implUseCase) CreateFromVoice(ctx context.Context, sc model.Scope, input task.VoiceCreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Utterance) == "" {
		return task.CreateOutput{}, task.ErrEmptyUtterance
	}

	draft := uc.parser.Parse(input.Utterance, uc.clock())

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:            sc.UserID,
		Title:             draft.Title,
		Description:       draft.Description,
		Status:            draft.Status,
		Priority:          draft.Priority,
		Tags:              draft.Tags,
		Category:          draft.Category,
		Location:          draft.Location,
		DueDate:           draft.DueDate,
		DueTime:           draft.DueTime,
		EstimatedDuration: draft.EstimatedDuration,
		VoiceCreated:      true,
		VoiceConfidence:   draft.Confidence,
		AISuggested:       draft.AISuggested,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromVoice CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.recordDailyStat(ctx, sc.UserID, insightRepo.UpsertDailyStatOptions{
		TasksCreated:      1,
		VoiceTasksCreated: 1,
	})

	return task.CreateOutput{Task: created}, nil
}

// recordDailyStat accumulates analytics counters for today. Failures are
// logged but never fail the originating operation.
func (uc *implUseCase) recordDailyStat(ctx context.Context, userID string, opt insightRepo.UpsertDailyStatOptions) {
	opt.UserID = userID
	opt.Date = uc.clock()
	if err := uc.statRepo.UpsertDailyStat(ctx, opt); err != nil {
		uc.l.Warnf(ctx, "uc.recordDailyStat UpsertDailyStat: %v", err)
	}
}
