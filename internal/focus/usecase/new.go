package usecase

import (
	"time"

	"personal-task-management/internal/focus/repository"
	insightRepo "personal-task-management/internal/insight/repository"
	"personal-task-management/pkg/log"
)

// implUseCase is the private implementation of focus.UseCase.
type implUseCase struct {
	repo     repository.Repository
	statRepo insightRepo.Repository
	l        log.Logger
	clock    func() time.Time
}

// New creates a new focus UseCase implementation.
func New(repo repository.Repository, statRepo insightRepo.Repository, l log.Logger) *implUseCase {
	return NewWithClock(repo, statRepo, l, time.Now)
}

// NewWithClock creates a focus UseCase with an injected clock. Duration
// math depends on the current time, so tests pin it here.
func NewWithClock(repo repository.Repository, statRepo insightRepo.Repository, l log.Logger, clock func() time.Time) *implUseCase {
	return &implUseCase{
		repo:     repo,
		statRepo: statRepo,
		l:        l,
		clock:    clock,
	}
}
