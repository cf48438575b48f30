package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"blog-backend/cmd/api/dto"
)

const (
	limiterIdleTTL     = 10 * time.Minute
	limiterCleanupTick = 5 * time.Minute
)

type limiterEntry struct {
	limiter      *rate.Limiter
	lastAccessed time.Time
}

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	every    rate.Limit
	burst    int
	now      func() time.Time
}

// NewIPRateLimiter allows perMinute requests per IP per minute with bursts of
// up to burst requests.
func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters: make(map[string]*limiterEntry),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consumes one token from ip's bucket.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastAccessed = now
	return entry.limiter.AllowN(now, 1)
}

// Cleanup drops buckets idle for longer than the idle TTL.
func (l *IPRateLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for ip, e := range l.limiters {
		if now.Sub(e.lastAccessed) > limiterIdleTTL {
			delete(l.limiters, ip)
		}
	}
}

// Run calls Cleanup periodically until done is closed.
func (l *IPRateLimiter) Run(done <-chan struct{}) {
	ticker := time.NewTicker(limiterCleanupTick)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

// RateLimit answers 429 once the client IP has exhausted its bucket. A nil
// limiter lets every request through.
func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l != nil && !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponseDTO{Error: "too_many_requests"})
			return
		}
		c.Next()
	}
}
