package usecase

import (
	"time"

	"personal-task-management/internal/reminder/repository"
	taskRepo "personal-task-management/internal/task/repository"
	"personal-task-management/pkg/log"
)

// implUseCase is the private implementation of reminder.UseCase.
type implUseCase struct {
	repo     repository.Repository
	taskRepo taskRepo.Repository
	l        log.Logger
	clock    func() time.Time
}

// New creates a new reminder UseCase implementation.
func New(repo repository.Repository, taskRepo taskRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		taskRepo: taskRepo,
		l:        l,
		clock:    time.Now,
	}
}
