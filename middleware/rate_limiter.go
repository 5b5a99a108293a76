// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/HSouheill/barrim_storefront/models"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

// RateLimiter throttles requests per client IP. An IP that exceeds its
// budget is blocked for blockDuration.
type RateLimiter struct {
	ips            map[string]*rate.Limiter
	blockedIPs     map[string]time.Time
	mu             sync.Mutex
	defaultLimit   rate.Limit
	defaultBurst   int
	blockDuration  time.Duration
	endpointLimits map[string]endpointLimit
	now            func() time.Time
	done           chan struct{}
	stopOnce       sync.Once
}

func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:            make(map[string]*rate.Limiter),
		blockedIPs:     make(map[string]time.Time),
		defaultLimit:   rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst:   20,
		blockDuration:  5 * time.Minute,
		endpointLimits: make(map[string]endpointLimit),
		now:            time.Now,
		done:           make(chan struct{}),
	}

	// Contact form: one message every 10 seconds, bursts of 3
	limiter.SetEndpointLimit("/api/contact", rate.Every(10*time.Second), 3)

	go limiter.cleanupBlockedIPs()
	return limiter
}

// SetEndpointLimit overrides the limit for one route path.
func (r *RateLimiter) SetEndpointLimit(path string, limit rate.Limit, burst int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpointLimits[path] = endpointLimit{limit: limit, burst: burst}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

func (r *RateLimiter) cleanupBlockedIPs() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.mu.Lock()
			now := r.now()
			for ip, blockUntil := range r.blockedIPs {
				if now.After(blockUntil) {
					delete(r.blockedIPs, ip)
					delete(r.ips, ip)
				}
			}
			r.mu.Unlock()
		}
	}
}

func (r *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			path := c.Path()

			r.mu.Lock()
			if blockUntil, blocked := r.blockedIPs[ip]; blocked {
				if r.now().Before(blockUntil) {
					r.mu.Unlock()
					return tooManyRequests(c, "IP address blocked due to too many requests", blockUntil)
				}
				delete(r.blockedIPs, ip)
				delete(r.ips, ip)
			}

			limit, burst := r.defaultLimit, r.defaultBurst
			key := ip
			if el, ok := r.endpointLimits[path]; ok {
				limit, burst = el.limit, el.burst
				key = ip + " " + path
			}
			limiter, ok := r.ips[key]
			if !ok {
				limiter = rate.NewLimiter(limit, burst)
				r.ips[key] = limiter
			}
			r.mu.Unlock()

			if !limiter.AllowN(r.now(), 1) {
				blockUntil := r.now().Add(r.blockDuration)
				r.mu.Lock()
				r.blockedIPs[ip] = blockUntil
				r.mu.Unlock()
				return tooManyRequests(c, "Too many requests", blockUntil)
			}
			return next(c)
		}
	}
}

func tooManyRequests(c echo.Context, message string, retryAfter time.Time) error {
	c.Response().Header().Set("Retry-After", retryAfter.UTC().Format(http.TimeFormat))
	return c.JSON(http.StatusTooManyRequests, models.Response{
		Status:  http.StatusTooManyRequests,
		Message: message,
		Data:    map[string]string{"retryAfter": retryAfter.Format(time.RFC3339)},
	})
}
