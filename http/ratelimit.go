package http

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client gets its own limiter, so one noisy reader cannot starve the
// others.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Allow reports whether a request from client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[client] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Middleware rejects requests over the limit with 429 Too Many Requests.
// Clients are keyed by their client id cookie, or the remote address when
// there is none.
func (l *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ClientIDFromContext(r.Context())
		if key == "" {
			key = r.RemoteAddr
		}
		if !l.Allow(key) {
			retry := time.Duration(float64(time.Second) / l.rps)
			w.Header().Set("Retry-After", strconv.Itoa(max(1, int(retry.Seconds()))))
			writeJSON(w, http.StatusTooManyRequests, &ErrorResponse{Error: "Too many requests."})
			return
		}
		next.ServeHTTP(w, r)
	})
}
