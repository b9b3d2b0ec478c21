package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-planner/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// RateLimit limits each client IP to the configured requests per minute.
// It is a no-op when no limit is configured.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		ip := extractIP(c.Request)
		if !m.limiter.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
