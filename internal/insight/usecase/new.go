package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"personal-task-management/internal/insight"
	"personal-task-management/internal/insight/repository"
	taskRepo "personal-task-management/internal/task/repository"
	"personal-task-management/pkg/log"
)

const (
	// metricsCacheTTL bounds staleness of cached metrics. Counters move
	// slowly, so a short TTL trades freshness for one stats scan per user
	// per interval.
	metricsCacheTTL  = time.Minute
	metricsCacheSize = 1024
)

// implUseCase is the private implementation of insight.UseCase.
type implUseCase struct {
	repo     repository.Repository
	taskRepo taskRepo.Repository
	l        log.Logger
	clock    func() time.Time
	cache    *lru.LRU[string, insight.MetricsOutput]
}

// New creates a new insight UseCase implementation.
func New(repo repository.Repository, taskRepo taskRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		taskRepo: taskRepo,
		l:        l,
		clock:    time.Now,
		cache:    lru.NewLRU[string, insight.MetricsOutput](metricsCacheSize, nil, metricsCacheTTL),
	}
}
