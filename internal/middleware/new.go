package middleware

import (
	"cseboard/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	// AllowedOrigins lists CORS origins. Empty or "*" allows any origin.
	AllowedOrigins []string
	// RateLimitPerMin caps write requests per client IP. Zero disables it.
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	cfg         Config
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
