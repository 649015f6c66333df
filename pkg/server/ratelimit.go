package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientIdle is how long a client's limiter is kept after its last request.
const clientIdle = 10 * time.Minute

// clientLimiter hands out one token bucket per client IP.
type clientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientBucket
	every     time.Duration
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(perMinute, burst int) *clientLimiter {
	if burst <= 0 {
		burst = perMinute
	}
	return &clientLimiter{
		clients: make(map[string]*clientBucket),
		every:   time.Minute / time.Duration(perMinute),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *clientLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > clientIdle {
		for key, b := range l.clients {
			if now.Sub(b.lastSeen) > clientIdle {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.clients[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.clients[ip] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// rateLimit rejects clients exceeding their develop budget with 429.
func (s *Server) rateLimit(l *clientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			s.logger.Warn("Rate limit exceeded for %s [%s]", c.ClientIP(), c.GetString(requestIDKey))
			c.String(http.StatusTooManyRequests, "too many develop requests, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
