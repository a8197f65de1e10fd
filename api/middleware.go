package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters holds one token bucket per client IP. Buckets idle for longer
// than idleTTL are dropped by a sweep that runs at most once per sweepEvery.
type clientLimiters struct {
	mu         sync.Mutex
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	sweepEvery time.Duration
	now        func() time.Time
	lastSweep  time.Time
	clients    map[string]*clientLimiter
}

func newClientLimiters(rps float64, burst int, idleTTL, sweepEvery time.Duration, now func() time.Time) *clientLimiters {
	return &clientLimiters{
		limit:      rate.Limit(rps),
		burst:      burst,
		idleTTL:    idleTTL,
		sweepEvery: sweepEvery,
		now:        now,
		lastSweep:  now(),
		clients:    make(map[string]*clientLimiter),
	}
}

func (l *clientLimiters) allow(ip string) bool {
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= l.sweepEvery {
		l.sweepLocked(now)
	}
	c, ok := l.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

func (l *clientLimiters) sweepLocked(now time.Time) {
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idleTTL {
			delete(l.clients, ip)
		}
	}
	l.lastSweep = now
}

func (l *clientLimiters) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimit applies a token bucket per client IP.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	return rateLimit(newClientLimiters(rps, burst, limiterIdleTTL, limiterSweepInterval, time.Now))
}

func rateLimit(limiters *clientLimiters) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{
				Error: "rate limit exceeded",
				Code:  "rate_limited",
			})
			return
		}
		c.Next()
	}
}
