package usecase

import (
	"time"

	insightRepo "personal-task-management/internal/insight/repository"
	"personal-task-management/internal/task/repository"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/nlparse"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	statRepo insightRepo.Repository
	parser   *nlparse.Parser
	l        log.Logger
	clock    func() time.Time
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, statRepo insightRepo.Repository, parser *nlparse.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		statRepo: statRepo,
		parser:   parser,
		l:        l,
		clock:    time.Now,
	}
}
