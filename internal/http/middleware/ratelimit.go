package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/imovelhub/backoffice-api/internal/config"
	"go.uber.org/zap"
)

// RateLimiter throttles requests per client IP. Whitelisted paths, the health
// probes by default, bypass the limit entirely.
type RateLimiter struct {
	cfg            *config.RateLimitConfig
	logger         *zap.Logger
	ipLimiter      func(http.Handler) http.Handler
	whitelistPaths map[string]bool
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(cfg *config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		cfg:            cfg,
		logger:         logger,
		whitelistPaths: make(map[string]bool),
	}

	for _, path := range cfg.WhitelistPaths {
		rl.whitelistPaths[path] = true
	}

	rl.ipLimiter = httprate.Limit(
		cfg.RequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rl.limitExceeded),
	)

	if cfg.Enabled {
		logger.Info("rate limiter initialized",
			zap.Int("requests_per_minute", cfg.RequestsPerMinute),
			zap.Strings("whitelist_paths", cfg.WhitelistPaths),
		)
	}

	return rl
}

// LimitByIP returns the rate limiting middleware
func (rl *RateLimiter) LimitByIP(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}

	limited := rl.ipLimiter(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.whitelistPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limitExceeded(w http.ResponseWriter, r *http.Request) {
	rl.logger.Warn("rate limit exceeded",
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"rate_limited","message":"rate limit exceeded"}` + "\n"))
}
