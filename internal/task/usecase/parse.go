package usecase

import (
	"context"
	"strings"

	"personal-task-management/internal/task"
)

// Parse previews the structured draft for an utterance without persisting.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Utterance) == "" {
		return task.ParseOutput{}, task.ErrEmptyUtterance
	}
	draft := uc.parser.Parse(input.Utterance, uc.clock())
	return task.ParseOutput{Draft: draft}, nil
}
