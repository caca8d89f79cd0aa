package postgre

import (
	"fmt"
	"strings"

	repo "personal-task-management/internal/task/repository"
)

func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildFilterConditions(opt repo.ListTasksOptions) ([]string, []any) {
	var (
		conditions []string
		args       []any
	)

	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if opt.Status != "" {
		args = append(args, opt.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if opt.Priority != "" {
		args = append(args, opt.Priority)
		conditions = append(conditions, fmt.Sprintf("priority = $%d", len(args)))
	}
	if opt.Tag != "" {
		args = append(args, opt.Tag)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}

	return conditions, args
}

func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.buildFilterConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.buildFilterConditions(opt)

	var sb strings.Builder
	if len(conditions) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	return sb.String(), args
}
