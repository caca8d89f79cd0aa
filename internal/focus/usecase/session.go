package usecase

import (
	"context"
	"math"

	"personal-task-management/internal/focus"
	repo "personal-task-management/internal/focus/repository"
	insightRepo "personal-task-management/internal/insight/repository"
	"personal-task-management/internal/model"
)

// Start begins a new focus session.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope, input focus.StartInput) (focus.StartOutput, error) {
	sessionType := input.SessionType
	if sessionType == "" {
		sessionType = model.SessionTypePomodoro
	}
	if !model.ValidSessionType(sessionType) {
		return focus.StartOutput{}, focus.ErrInvalidType
	}

	session, err := uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
		UserID:      sc.UserID,
		TaskID:      input.TaskID,
		StartTime:   uc.clock(),
		SessionType: sessionType,
		Notes:       input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Start CreateSession: %v", err)
		return focus.StartOutput{}, err
	}
	return focus.StartOutput{Session: session}, nil
}

// End closes a running session. Duration is the wall-clock span in whole
// minutes (rounded), credited to the day's focus counter.
func (uc *implUseCase) End(ctx context.Context, sc model.Scope, id string) (focus.EndOutput, error) {
	existing, err := uc.repo.GetOneSession(ctx, repo.GetOneSessionOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.End GetOneSession: %v", err)
		return focus.EndOutput{}, err
	}
	if existing.ID == "" {
		return focus.EndOutput{}, focus.ErrSessionNotFound
	}
	if existing.EndTime != nil {
		return focus.EndOutput{}, focus.ErrSessionEnded
	}

	now := uc.clock()
	minutes := int(math.Round(now.Sub(existing.StartTime).Minutes()))
	if minutes < 0 {
		minutes = 0
	}

	session, err := uc.repo.UpdateSession(ctx, repo.UpdateSessionOptions{
		ID:              existing.ID,
		UserID:          sc.UserID,
		EndTime:         &now,
		DurationMinutes: minutes,
		Interruptions:   existing.Interruptions,
		Notes:           existing.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.End UpdateSession: %v", err)
		return focus.EndOutput{}, err
	}

	if minutes > 0 {
		uc.recordFocusMinutes(ctx, sc.UserID, minutes)
	}
	return focus.EndOutput{Session: session}, nil
}

// Interrupt increments the interruption counter of a running session.
func (uc *implUseCase) Interrupt(ctx context.Context, sc model.Scope, id string) (focus.InterruptOutput, error) {
	existing, err := uc.repo.GetOneSession(ctx, repo.GetOneSessionOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Interrupt GetOneSession: %v", err)
		return focus.InterruptOutput{}, err
	}
	if existing.ID == "" {
		return focus.InterruptOutput{}, focus.ErrSessionNotFound
	}
	if existing.EndTime != nil {
		return focus.InterruptOutput{}, focus.ErrSessionEnded
	}

	session, err := uc.repo.UpdateSession(ctx, repo.UpdateSessionOptions{
		ID:            existing.ID,
		UserID:        sc.UserID,
		Interruptions: existing.Interruptions + 1,
		Notes:         existing.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Interrupt UpdateSession: %v", err)
		return focus.InterruptOutput{}, err
	}
	return focus.InterruptOutput{Session: session}, nil
}

// List returns the user's sessions, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input focus.ListInput) (focus.ListOutput, error) {
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

	sessions, total, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{
		UserID: sc.UserID,
		TaskID: input.TaskID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSessions: %v", err)
		return focus.ListOutput{}, err
	}

	return focus.ListOutput{
		Sessions: sessions,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// recordFocusMinutes accumulates focus time for today. Failures are logged
// but never fail the originating operation.
func (uc *implUseCase) recordFocusMinutes(ctx context.Context, userID string, minutes int) {
	err := uc.statRepo.UpsertDailyStat(ctx, insightRepo.UpsertDailyStatOptions{
		UserID:       userID,
		Date:         uc.clock(),
		FocusMinutes: minutes,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.recordFocusMinutes UpsertDailyStat: %v", err)
	}
}
