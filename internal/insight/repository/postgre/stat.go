package postgre

import (
	"context"

	"personal-task-management/internal/model"

	repo "personal-task-management/internal/insight/repository"
)

// UpsertDailyStat accumulates counter deltas into the (user, date) row.
// The conflict branch adds rather than overwrites, so concurrent writers
// from the task and focus flows never lose counts.
func (r *implRepository) UpsertDailyStat(ctx context.Context, opt repo.UpsertDailyStatOptions) error {
	const query = `
		INSERT INTO daily_stats (user_id, date, tasks_created, tasks_completed, voice_tasks_created, focus_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date) DO UPDATE SET
			tasks_created       = daily_stats.tasks_created + EXCLUDED.tasks_created,
			tasks_completed     = daily_stats.tasks_completed + EXCLUDED.tasks_completed,
			voice_tasks_created = daily_stats.voice_tasks_created + EXCLUDED.voice_tasks_created,
			focus_minutes       = daily_stats.focus_minutes + EXCLUDED.focus_minutes`

	_, err := r.db.ExecContext(ctx, query,
		opt.UserID, opt.Date.Format("2006-01-02"),
		opt.TasksCreated, opt.TasksCompleted, opt.VoiceTasksCreated, opt.FocusMinutes,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertDailyStat"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// ListDailyStats returns the rows for a user in [From, To], oldest first.
func (r *implRepository) ListDailyStats(ctx context.Context, opt repo.ListDailyStatsOptions) ([]model.DailyStat, error) {
	const query = `
		SELECT user_id, date, tasks_created, tasks_completed, voice_tasks_created, focus_minutes
		FROM daily_stats
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`

	rows, err := r.db.QueryContext(ctx, query,
		opt.UserID, opt.From.Format("2006-01-02"), opt.To.Format("2006-01-02"),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDailyStats"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var stats []model.DailyStat
	for rows.Next() {
		var stat model.DailyStat
		if err := rows.Scan(
			&stat.UserID, &stat.Date,
			&stat.TasksCreated, &stat.TasksCompleted, &stat.VoiceTasksCreated, &stat.FocusMinutes,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDailyStats"), err)
			return nil, repo.ErrFailedToList
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
