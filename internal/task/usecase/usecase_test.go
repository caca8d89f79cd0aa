package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	insightRepo "personal-task-management/internal/insight/repository"
	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	"personal-task-management/internal/task/repository"
	"personal-task-management/internal/task/usecase"
	"personal-task-management/pkg/nlparse"
)

// mock dependencies

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

type mockTaskRepo struct {
	failCreate bool
	failGet    bool
	tasks      map[string]model.Task
	created    []repository.CreateTaskOptions
	updated    []repository.UpdateTaskOptions
	deleted    []string
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: map[string]model.Task{}}
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.failCreate {
		return model.Task{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	return model.Task{
		ID:                "task-1",
		UserID:            opt.UserID,
		Title:             opt.Title,
		Description:       opt.Description,
		Status:            opt.Status,
		Priority:          opt.Priority,
		Tags:              opt.Tags,
		Category:          opt.Category,
		Location:          opt.Location,
		Notes:             opt.Notes,
		DueDate:           opt.DueDate,
		DueTime:           opt.DueTime,
		EstimatedDuration: opt.EstimatedDuration,
		VoiceCreated:      opt.VoiceCreated,
		VoiceConfidence:   opt.VoiceConfidence,
		AISuggested:       opt.AISuggested,
	}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.failGet {
		return model.Task{}, errors.New("db error")
	}
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	return out, len(out), nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updated = append(m.updated, opt)
	t := m.tasks[opt.ID]
	t.Title = opt.Title
	t.Description = opt.Description
	t.Status = opt.Status
	t.Priority = opt.Priority
	t.Tags = opt.Tags
	t.Category = opt.Category
	t.Location = opt.Location
	t.Notes = opt.Notes
	t.DueDate = opt.DueDate
	t.DueTime = opt.DueTime
	t.EstimatedDuration = opt.EstimatedDuration
	t.ActualDuration = opt.ActualDuration
	t.CompletedAt = opt.CompletedAt
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, userID, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.tasks, id)
	return nil
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

func newTestUseCase(t *testing.T, repo *mockTaskRepo, stats *mockStatRepo) task.UseCase {
	t.Helper()
	parser, err := nlparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return usecase.New(repo, stats, parser, &mockLogger{})
}

var testScope = model.Scope{UserID: "user-1"}

func TestCreate(t *testing.T) {
	repo := newMockTaskRepo()
	stats := &mockStatRepo{}
	uc := newTestUseCase(t, repo, stats)

	out, err := uc.Create(context.Background(), testScope, task.CreateInput{Title: "  Write report  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task.Title != "Write report" {
		t.Errorf("title = %q, want %q", out.Task.Title, "Write report")
	}
	if out.Task.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want default medium", out.Task.Priority)
	}
	if out.Task.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", out.Task.Status)
	}
	if len(out.Task.Tags) != 1 || out.Task.Tags[0] != "general" {
		t.Errorf("tags = %v, want [general]", out.Task.Tags)
	}
	if len(stats.upserts) != 1 || stats.upserts[0].TasksCreated != 1 {
		t.Errorf("expected one tasks_created upsert, got %v", stats.upserts)
	}
	if stats.upserts[0].VoiceTasksCreated != 0 {
		t.Errorf("manual create must not count as voice")
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newMockTaskRepo()
	uc := newTestUseCase(t, repo, &mockStatRepo{})

	if _, err := uc.Create(context.Background(), testScope, task.CreateInput{Title: "   "}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("blank title: err = %v, want ErrEmptyTitle", err)
	}
	if _, err := uc.Create(context.Background(), testScope, task.CreateInput{Title: "x", Priority: "extreme"}); !errors.Is(err, task.ErrInvalidPriority) {
		t.Errorf("bad priority: err = %v, want ErrInvalidPriority", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("nothing should be persisted on validation failure")
	}
}

func TestCreateFromVoice(t *testing.T) {
	repo := newMockTaskRepo()
	stats := &mockStatRepo{}
	uc := newTestUseCase(t, repo, stats)

	out, err := uc.CreateFromVoice(context.Background(), testScope, task.VoiceCreateInput{
		Utterance: "Call mom tomorrow at 3pm, urgent",
	})
	if err != nil {
		t.Fatalf("CreateFromVoice: %v", err)
	}
	if out.Task.Title != "Call mom" {
		t.Errorf("title = %q, want %q", out.Task.Title, "Call mom")
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want high", out.Task.Priority)
	}
	if out.Task.DueTime != "15:00" {
		t.Errorf("dueTime = %q, want 15:00", out.Task.DueTime)
	}
	if out.Task.DueDate == nil {
		t.Fatal("dueDate missing")
	}
	if !out.Task.VoiceCreated {
		t.Error("voiceCreated must be set")
	}
	if out.Task.VoiceConfidence != nlparse.DefaultConfidence {
		t.Errorf("confidence = %v, want %v", out.Task.VoiceConfidence, nlparse.DefaultConfidence)
	}
	if len(stats.upserts) != 1 || stats.upserts[0].VoiceTasksCreated != 1 || stats.upserts[0].TasksCreated != 1 {
		t.Errorf("expected voice+created upsert, got %v", stats.upserts)
	}
}

func TestCreateFromVoiceEmpty(t *testing.T) {
	uc := newTestUseCase(t, newMockTaskRepo(), &mockStatRepo{})
	if _, err := uc.CreateFromVoice(context.Background(), testScope, task.VoiceCreateInput{Utterance: "  "}); !errors.Is(err, task.ErrEmptyUtterance) {
		t.Errorf("err = %v, want ErrEmptyUtterance", err)
	}
}

func TestParse(t *testing.T) {
	uc := newTestUseCase(t, newMockTaskRepo(), &mockStatRepo{})

	out, err := uc.Parse(context.Background(), task.ParseInput{Utterance: "Buy groceries at Walmart"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.Draft.Location != "Walmart" {
		t.Errorf("location = %q, want Walmart", out.Draft.Location)
	}
	if out.Draft.Category != "Shopping" {
		t.Errorf("category = %q, want Shopping", out.Draft.Category)
	}

	if _, err := uc.Parse(context.Background(), task.ParseInput{Utterance: ""}); !errors.Is(err, task.ErrEmptyUtterance) {
		t.Errorf("empty: err = %v, want ErrEmptyUtterance", err)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUseCase(t, newMockTaskRepo(), &mockStatRepo{})
	if _, err := uc.Detail(context.Background(), testScope, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDetailScoped(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "someone-else", Title: "theirs"}
	uc := newTestUseCase(t, repo, &mockStatRepo{})

	if _, err := uc.Detail(context.Background(), testScope, "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("other user's task must look absent, got err = %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	due := time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{
		ID: "t1", UserID: "user-1", Title: "Old title", Priority: model.PriorityLow,
		Status: model.StatusPending, Tags: []string{"work"}, DueDate: &due, DueTime: "09:00",
	}
	uc := newTestUseCase(t, repo, &mockStatRepo{})

	out, err := uc.Update(context.Background(), testScope, task.UpdateInput{ID: "t1", Priority: model.PriorityHigh})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Task.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want high", out.Task.Priority)
	}
	if out.Task.Title != "Old title" {
		t.Errorf("title = %q, untouched fields must survive", out.Task.Title)
	}
	if out.Task.DueDate == nil || !out.Task.DueDate.Equal(due) {
		t.Errorf("dueDate must survive a partial update")
	}
}

func TestUpdateClearDueDate(t *testing.T) {
	due := time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "user-1", Title: "T", Status: model.StatusPending, DueDate: &due}
	uc := newTestUseCase(t, repo, &mockStatRepo{})

	out, err := uc.Update(context.Background(), testScope, task.UpdateInput{ID: "t1", ClearDueDate: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Task.DueDate != nil {
		t.Errorf("dueDate = %v, want cleared", out.Task.DueDate)
	}
}

func TestToggleCompletion(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "user-1", Title: "T", Status: model.StatusPending}
	stats := &mockStatRepo{}
	uc := newTestUseCase(t, repo, stats)

	out, err := uc.ToggleCompletion(context.Background(), testScope, "t1")
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if out.Task.Status != model.StatusCompleted {
		t.Errorf("status = %q, want completed", out.Task.Status)
	}
	if out.Task.CompletedAt == nil {
		t.Error("completedAt must be stamped")
	}
	if len(stats.upserts) != 1 || stats.upserts[0].TasksCompleted != 1 {
		t.Errorf("expected tasks_completed upsert, got %v", stats.upserts)
	}

	// Toggling back clears completion and must not bump the counter again.
	out, err = uc.ToggleCompletion(context.Background(), testScope, "t1")
	if err != nil {
		t.Fatalf("ToggleCompletion back: %v", err)
	}
	if out.Task.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", out.Task.Status)
	}
	if out.Task.CompletedAt != nil {
		t.Error("completedAt must be cleared")
	}
	if len(stats.upserts) != 1 {
		t.Errorf("uncompleting must not record a completion, got %d upserts", len(stats.upserts))
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "user-1", Title: "T", Status: model.StatusPending}
	stats := &mockStatRepo{}
	uc := newTestUseCase(t, repo, stats)

	out, err := uc.UpdateStatus(context.Background(), testScope, task.UpdateStatusInput{ID: "t1", Status: model.StatusInProgress})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if out.Task.Status != model.StatusInProgress {
		t.Errorf("status = %q, want in_progress", out.Task.Status)
	}
	if len(stats.upserts) != 0 {
		t.Errorf("in_progress must not record a completion")
	}

	if _, err := uc.UpdateStatus(context.Background(), testScope, task.UpdateStatusInput{ID: "t1", Status: "done"}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockTaskRepo()
	repo.tasks["t1"] = model.Task{ID: "t1", UserID: "user-1", Title: "T"}
	uc := newTestUseCase(t, repo, &mockStatRepo{})

	if err := uc.Delete(context.Background(), testScope, "t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(context.Background(), testScope, "t1"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second delete: err = %v, want ErrTaskNotFound", err)
	}
}

func TestListClampsPagination(t *testing.T) {
	repo := newMockTaskRepo()
	uc := newTestUseCase(t, repo, &mockStatRepo{})

	out, err := uc.List(context.Background(), testScope, task.ListInput{Limit: 0, Offset: -5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Limit != 20 || out.Offset != 0 {
		t.Errorf("limit/offset = %d/%d, want 20/0", out.Limit, out.Offset)
	}

	out, err = uc.List(context.Background(), testScope, task.ListInput{Limit: 500})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Limit != 100 {
		t.Errorf("limit = %d, want clamped to 100", out.Limit)
	}

	if _, err := uc.List(context.Background(), testScope, task.ListInput{Status: "bogus"}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}
