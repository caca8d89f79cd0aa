package insight

import (
	"fmt"
	"math"
	"time"

	"personal-task-management/internal/model"
)

// The engine is a set of pure functions over snapshots of stats and tasks.
// Every division is guarded: empty input or zero created tasks yields 0,
// never an error.

// CompletionRate is the percentage of created tasks that were completed
// across the given days, rounded to the nearest integer.
func CompletionRate(stats []model.DailyStat) int {
	created, completed, _ := sumStats(stats)
	if created == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(created) * 100))
}

// ProductivityScore is the completion-based score capped at 100. It is
// currently the same formula as CompletionRate but exposed separately so
// the two can diverge without an API change.
func ProductivityScore(stats []model.DailyStat) int {
	score := CompletionRate(stats)
	if score > 100 {
		score = 100
	}
	return score
}

// VoiceUsageRate is the percentage of created tasks that came in through
// voice dictation.
func VoiceUsageRate(stats []model.DailyStat) int {
	created, _, voice := sumStats(stats)
	if created == 0 {
		return 0
	}
	return int(math.Round(float64(voice) / float64(created) * 100))
}

// ComputeMetrics bundles the three rates. Sums are order-independent, so
// reordering the input never changes the result.
func ComputeMetrics(stats []model.DailyStat) Metrics {
	return Metrics{
		ProductivityScore: ProductivityScore(stats),
		CompletionRate:    CompletionRate(stats),
		VoiceUsageRate:    VoiceUsageRate(stats),
	}
}

func sumStats(stats []model.DailyStat) (created, completed, voice int) {
	for _, day := range stats {
		created += day.TasksCreated
		completed += day.TasksCompleted
		voice += day.VoiceTasksCreated
	}
	return created, completed, voice
}

// Suggestion rule thresholds.
const (
	openTaskThreshold     = 10
	lowCompletionFraction = 0.5
)

// BuildSuggestions derives personalized suggestions from a snapshot of
// recent tasks. Rules are independent: every applicable rule contributes,
// with no early exit.
func BuildSuggestions(tasks []model.Task, now time.Time) []Suggestion {
	suggestions := []Suggestion{}
	if len(tasks) == 0 {
		return suggestions
	}

	var incomplete, completed, overdue int
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			completed++
			continue
		}
		incomplete++
		if t.DueDate != nil && t.DueDate.Before(now) {
			overdue++
		}
	}

	if incomplete > openTaskThreshold {
		suggestions = append(suggestions, Suggestion{
			Kind:        SuggestionOptimization,
			Title:       "Too many open tasks",
			Description: "You have many incomplete tasks. Consider focusing on completing existing ones before adding new tasks.",
			Priority:    model.PriorityHigh,
		})
	}

	if overdue > 0 {
		suggestions = append(suggestions, Suggestion{
			Kind:        SuggestionReminder,
			Title:       "Overdue tasks need attention",
			Description: fmt.Sprintf("You have %d overdue tasks. Consider rescheduling or completing them.", overdue),
			Priority:    model.PriorityHigh,
		})
	}

	if float64(completed)/float64(len(tasks)) < lowCompletionFraction {
		suggestions = append(suggestions, Suggestion{
			Kind:        SuggestionInsight,
			Title:       "Low completion rate",
			Description: "Your task completion rate is below 50%. Try breaking large tasks into smaller, manageable pieces.",
			Priority:    model.PriorityMedium,
		})
	}

	return suggestions
}
