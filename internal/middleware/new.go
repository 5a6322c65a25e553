package middleware

import (
	pkgLog "voice-task-tracker/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	AllowedOrigin   string
	RateLimitPerMin int
}

type Middleware struct {
	l             pkgLog.Logger
	allowedOrigin string
	limiter       *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l:             l,
		allowedOrigin: cfg.AllowedOrigin,
		limiter:       newRateLimiter(cfg.RateLimitPerMin),
	}
}
