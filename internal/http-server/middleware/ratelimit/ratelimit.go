// Package ratelimit implements a fixed window request limiter backed by
// redis counters.
package ratelimit

import (
	"context"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/lib/metrics"
	"fmt"
	"github.com/go-chi/render"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net"
	"net/http"
	"time"
)

type Limiter struct {
	log    *slog.Logger
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func New(log *slog.Logger, client redis.Cmdable, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		log:    log.With(slog.String("component", "middleware/ratelimit")),
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow counts one hit for key and reports whether it is within the limit.
// The window starts with the first hit.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}

	if count == 1 {
		if err = l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set window: %w", err)
		}
	}

	return count <= l.limit, nil
}

// Middleware limits requests per user, or per client address for anonymous
// requests. Redis failures let the request through.
func (l *Limiter) Middleware(scope string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			key := "ratelimit:" + scope + ":" + identity(r)

			ok, err := l.Allow(r.Context(), key)
			if err != nil {
				l.log.Warn("rate limiter unavailable", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			if !ok {
				metrics.RateLimited.WithLabelValues(scope).Inc()
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(l.window.Seconds())))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func identity(r *http.Request) string {
	if user, ok := auth.UserFromContext(r.Context()); ok {
		return "user:" + user.ID
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}

	return "ip:" + host
}
