package middleware

import (
	"sync"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/errors"
	"fintrack/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	fallbackRequestsPerSecond = 10
	visitorTTL                = 3 * time.Minute
	cleanupInterval           = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client IP. Buckets for IPs
// not seen within visitorTTL are discarded by a background sweep.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(cfg config.SecurityConfig) *ipRateLimiter {
	rps := cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = fallbackRequestsPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 2 * rps
	}

	return &ipRateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func (l *ipRateLimiter) sweep() {
	for {
		time.Sleep(cleanupInterval)

		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimiter throttles requests per client IP using the
// requests-per-second and burst limits from the security configuration.
// Non-positive values fall back to safe defaults.
func RateLimiter(cfg config.SecurityConfig) echo.MiddlewareFunc {
	limiter := newIPRateLimiter(cfg)
	go limiter.sweep()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.allow(clientIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
