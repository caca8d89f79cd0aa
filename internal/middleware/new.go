package middleware

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"personal-task-management/config"
	"personal-task-management/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l        log.Logger
	auth     config.AuthConfig
	rlConfig config.RateLimitConfig
	limiters *lru.LRU[string, *rate.Limiter]
}

// limiterTTL is how long an idle client keeps its limiter before eviction.
const limiterTTL = 10 * time.Minute

func New(l log.Logger, auth config.AuthConfig, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:        l,
		auth:     auth,
		rlConfig: rl,
		limiters: lru.NewLRU[string, *rate.Limiter](rl.MaxClients, nil, limiterTTL),
	}
}
