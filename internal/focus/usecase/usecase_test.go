package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-task-management/internal/focus"
	"personal-task-management/internal/focus/repository"
	"personal-task-management/internal/focus/usecase"
	insightRepo "personal-task-management/internal/insight/repository"
	"personal-task-management/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockSessionRepo struct {
	sessions map[string]model.FocusSession
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: map[string]model.FocusSession{}}
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.FocusSession, error) {
	session := model.FocusSession{
		ID:          "sess-1",
		UserID:      opt.UserID,
		TaskID:      opt.TaskID,
		StartTime:   opt.StartTime,
		SessionType: opt.SessionType,
		Notes:       opt.Notes,
	}
	m.sessions[session.ID] = session
	return session, nil
}

func (m *mockSessionRepo) GetOneSession(ctx context.Context, opt repository.GetOneSessionOptions) (model.FocusSession, error) {
	s, ok := m.sessions[opt.ID]
	if !ok || s.UserID != opt.UserID {
		return model.FocusSession{}, nil
	}
	return s, nil
}

func (m *mockSessionRepo) ListSessions(ctx context.Context, opt repository.ListSessionsOptions) ([]model.FocusSession, int, error) {
	var out []model.FocusSession
	for _, s := range m.sessions {
		if s.UserID == opt.UserID {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func (m *mockSessionRepo) UpdateSession(ctx context.Context, opt repository.UpdateSessionOptions) (model.FocusSession, error) {
	s := m.sessions[opt.ID]
	s.EndTime = opt.EndTime
	s.DurationMinutes = opt.DurationMinutes
	s.Interruptions = opt.Interruptions
	s.Notes = opt.Notes
	m.sessions[opt.ID] = s
	return s, nil
}

type mockStatRepo struct {
	upserts []insightRepo.UpsertDailyStatOptions
}

func (m *mockStatRepo) UpsertDailyStat(ctx context.Context, opt insightRepo.UpsertDailyStatOptions) error {
	m.upserts = append(m.upserts, opt)
	return nil
}

func (m *mockStatRepo) ListDailyStats(ctx context.Context, opt insightRepo.ListDailyStatsOptions) ([]model.DailyStat, error) {
	return nil, nil
}

var testScope = model.Scope{UserID: "user-1"}

func TestStartDefaultsToPomodoro(t *testing.T) {
	repo := newMockSessionRepo()
	uc := usecase.New(repo, &mockStatRepo{}, &mockLogger{})

	out, err := uc.Start(context.Background(), testScope, focus.StartInput{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if out.Session.SessionType != model.SessionTypePomodoro {
		t.Errorf("sessionType = %q, want pomodoro", out.Session.SessionType)
	}

	if _, err := uc.Start(context.Background(), testScope, focus.StartInput{SessionType: "nap"}); !errors.Is(err, focus.ErrInvalidType) {
		t.Errorf("bad type: err = %v, want ErrInvalidType", err)
	}
}

func TestEndComputesDuration(t *testing.T) {
	start := time.Date(2026, 5, 7, 9, 0, 0, 0, time.UTC)
	now := start.Add(25*time.Minute + 20*time.Second)

	repo := newMockSessionRepo()
	repo.sessions["sess-1"] = model.FocusSession{
		ID: "sess-1", UserID: "user-1", StartTime: start, SessionType: model.SessionTypePomodoro,
	}
	stats := &mockStatRepo{}
	uc := usecase.NewWithClock(repo, stats, &mockLogger{}, func() time.Time { return now })

	out, err := uc.End(context.Background(), testScope, "sess-1")
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if out.Session.DurationMinutes != 25 {
		t.Errorf("duration = %d, want 25", out.Session.DurationMinutes)
	}
	if out.Session.EndTime == nil || !out.Session.EndTime.Equal(now) {
		t.Errorf("endTime = %v, want %v", out.Session.EndTime, now)
	}
	if len(stats.upserts) != 1 || stats.upserts[0].FocusMinutes != 25 {
		t.Errorf("expected focus_minutes upsert of 25, got %v", stats.upserts)
	}

	// Ending twice fails.
	if _, err := uc.End(context.Background(), testScope, "sess-1"); !errors.Is(err, focus.ErrSessionEnded) {
		t.Errorf("second end: err = %v, want ErrSessionEnded", err)
	}
}

func TestEndZeroMinutesSkipsStat(t *testing.T) {
	start := time.Date(2026, 5, 7, 9, 0, 0, 0, time.UTC)

	repo := newMockSessionRepo()
	repo.sessions["sess-1"] = model.FocusSession{ID: "sess-1", UserID: "user-1", StartTime: start}
	stats := &mockStatRepo{}
	uc := usecase.NewWithClock(repo, stats, &mockLogger{}, func() time.Time { return start.Add(10 * time.Second) })

	out, err := uc.End(context.Background(), testScope, "sess-1")
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if out.Session.DurationMinutes != 0 {
		t.Errorf("duration = %d, want 0", out.Session.DurationMinutes)
	}
	if len(stats.upserts) != 0 {
		t.Errorf("zero-minute session must not touch daily stats")
	}
}

func TestInterrupt(t *testing.T) {
	repo := newMockSessionRepo()
	repo.sessions["sess-1"] = model.FocusSession{ID: "sess-1", UserID: "user-1", StartTime: time.Now()}
	uc := usecase.New(repo, &mockStatRepo{}, &mockLogger{})

	out, err := uc.Interrupt(context.Background(), testScope, "sess-1")
	if err != nil {
		t.Fatalf("Interrupt: %v", err)
	}
	if out.Session.Interruptions != 1 {
		t.Errorf("interruptions = %d, want 1", out.Session.Interruptions)
	}

	out, err = uc.Interrupt(context.Background(), testScope, "sess-1")
	if err != nil {
		t.Fatalf("Interrupt again: %v", err)
	}
	if out.Session.Interruptions != 2 {
		t.Errorf("interruptions = %d, want 2", out.Session.Interruptions)
	}

	if _, err := uc.Interrupt(context.Background(), testScope, "missing"); !errors.Is(err, focus.ErrSessionNotFound) {
		t.Errorf("missing: err = %v, want ErrSessionNotFound", err)
	}
}
