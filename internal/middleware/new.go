package middleware

import (
	pkgLog "task-planner/pkg/log"
)

// Config configures the HTTP middlewares.
type Config struct {
	AllowedOrigins []string
	RequestsPerMin int
}

type Middleware struct {
	l              pkgLog.Logger
	allowedOrigins map[string]struct{}
	allowAll       bool
	limiter        *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			mw.allowAll = true
			continue
		}
		mw.allowedOrigins[o] = struct{}{}
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
