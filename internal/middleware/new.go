package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"schedlink/config"
	"schedlink/pkg/log"
)

// Middleware bundles the gin middleware used across route groups.
type Middleware struct {
	l           log.Logger
	adminAPIKey string
	rateCfg     config.RateLimitConfig
	limiters    *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, adminAPIKey string, rateCfg config.RateLimitConfig) Middleware {
	// Oldest clients are evicted once the cache fills; they simply start
	// with a fresh limiter on their next request.
	limiters, _ := lru.New[string, *rate.Limiter](4096)
	return Middleware{
		l:           l,
		adminAPIKey: adminAPIKey,
		rateCfg:     rateCfg,
		limiters:    limiters,
	}
}
