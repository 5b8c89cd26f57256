package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter caps requests per client IP to limit per window. Counters reset
// when their window elapses; stale counters are pruned once the map grows
// past a threshold so it does not keep one entry per former client forever.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type counter struct {
		hits  int
		since time.Time
	}

	var (
		mu       sync.Mutex
		counters = make(map[string]*counter)
	)

	prune := func(now time.Time) {
		for key, c := range counters {
			if now.Sub(c.since) > window {
				delete(counters, key)
			}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			if len(counters) > 1024 {
				prune(now)
			}

			cnt, ok := counters[key]
			if !ok || now.Sub(cnt.since) > window {
				cnt = &counter{since: now}
				counters[key] = cnt
			}

			if cnt.hits >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			cnt.hits++
			mu.Unlock()

			return next(c)
		}
	}
}
