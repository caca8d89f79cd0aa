package usecase

import (
	"context"
	"fmt"

	"personal-task-management/internal/insight"
	repo "personal-task-management/internal/insight/repository"
	"personal-task-management/internal/model"
	taskRepo "personal-task-management/internal/task/repository"
)

const (
	defaultMetricsDays = 14
	maxMetricsDays     = 90

	// suggestionWindow is how many recent tasks feed the suggestion rules.
	suggestionWindow = 50
)

// Metrics aggregates the user's trailing daily stats into rates. Results
// are cached per (user, days) for a short TTL.
func (uc *implUseCase) Metrics(ctx context.Context, sc model.Scope, input insight.MetricsInput) (insight.MetricsOutput, error) {
	days := input.Days
	if days == 0 {
		days = defaultMetricsDays
	}
	if days < 1 || days > maxMetricsDays {
		return insight.MetricsOutput{}, insight.ErrInvalidDays
	}

	cacheKey := fmt.Sprintf("%s:%d", sc.UserID, days)
	if cached, ok := uc.cache.Get(cacheKey); ok {
		return cached, nil
	}

	now := uc.clock()
	stats, err := uc.repo.ListDailyStats(ctx, repo.ListDailyStatsOptions{
		UserID: sc.UserID,
		From:   now.AddDate(0, 0, -(days - 1)),
		To:     now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Metrics ListDailyStats: %v", err)
		return insight.MetricsOutput{}, err
	}

	output := insight.MetricsOutput{
		Metrics: insight.ComputeMetrics(stats),
		Days:    days,
	}
	uc.cache.Add(cacheKey, output)
	return output, nil
}

// Suggestions derives personalized suggestions from the user's most recent
// tasks. Computed fresh per request.
func (uc *implUseCase) Suggestions(ctx context.Context, sc model.Scope) (insight.SuggestionsOutput, error) {
	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID: sc.UserID,
		Limit:  suggestionWindow,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggestions ListTasks: %v", err)
		return insight.SuggestionsOutput{}, err
	}

	return insight.SuggestionsOutput{
		Suggestions: insight.BuildSuggestions(tasks, uc.clock()),
	}, nil
}

// Tips returns the day's rotation of the static tip catalog.
func (uc *implUseCase) Tips(ctx context.Context) insight.TipsOutput {
	return insight.TipsOutput{Tips: insight.RotateTips(uc.clock())}
}
