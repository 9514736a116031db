package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/auth"
)

const (
	visitorIdleTTL  = 3 * time.Minute
	cleanupInterval = 1 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// RateLimiter tracks one token bucket per client. Authenticated requests are
// keyed by caller id so users behind a shared address do not starve each
// other; anonymous requests fall back to the client IP.
type RateLimiter struct {
	visitors sync.Map
	rps      rate.Limit
	burst    int
}

// NewRateLimiter creates a Gin middleware that applies per-client rate limiting.
// rps controls the steady-state rate (requests per second), burst is the
// maximum number of tokens that can be consumed in a single burst. Idle
// visitors are evicted until ctx is done.
func NewRateLimiter(ctx context.Context, rps rate.Limit, burst int) gin.HandlerFunc {
	rl := &RateLimiter{rps: rps, burst: burst}
	go rl.cleanupLoop(ctx)
	return rl.handle
}

func clientKey(c *gin.Context) string {
	if id, ok := auth.CallerID(c); ok {
		return "user:" + id
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	now := time.Now()
	val, loaded := rl.visitors.LoadOrStore(key, &visitor{
		limiter:  rate.NewLimiter(rl.rps, rl.burst),
		lastSeen: now,
	})
	v := val.(*visitor)
	if loaded {
		v.mu.Lock()
		v.lastSeen = now
		v.mu.Unlock()
	}
	return v.limiter
}

func (rl *RateLimiter) handle(c *gin.Context) {
	limiter := rl.getVisitor(clientKey(c))

	if !limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"message": "too many requests, please try again later",
		})
		return
	}

	c.Next()
}

func (rl *RateLimiter) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

// evictIdle removes visitors not seen within visitorIdleTTL of now.
func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.visitors.Range(func(key, value any) bool {
		v := value.(*visitor)
		v.mu.Lock()
		idle := now.Sub(v.lastSeen) > visitorIdleTTL
		v.mu.Unlock()
		if idle {
			rl.visitors.Delete(key)
		}
		return true
	})
}
