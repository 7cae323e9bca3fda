package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/logger"
)

// RateLimitConfig sizes the token buckets guarding bookmark writes.
type RateLimitConfig struct {
	Burst      int           // writes a caller may send back to back
	PerMinute  int           // steady refill
	MaxKeys    int           // sweep idle buckets early once this many are tracked, 0 = no cap
	IdleTTL    time.Duration // buckets untouched this long are dropped, default 15m
	TrustProxy bool          // resolve the client address from proxy headers

	Now func() time.Time // defaults to time.Now
}

// RateKey names the bucket a request draws from: one per signed-in user, and
// one per client address for requests that resolved to domain.DefaultUserID.
// It needs UserID to have run first.
func RateKey(r *http.Request, trustProxy bool) string {
	if uid := UserFrom(r.Context()); uid != domain.DefaultUserID {
		return "user:" + uid
	}
	if addr, ok := clientAddr(r, trustProxy); ok {
		return "ip:" + addr.String()
	}
	return "ip:unknown"
}

type bucket struct {
	tokens float64
	last   time.Time
}

type limiter struct {
	mu       sync.Mutex
	perToken time.Duration // refill time of one token
	capacity float64
	maxKeys  int
	idleTTL  time.Duration
	buckets  map[string]*bucket
	swept    time.Time
}

func newLimiter(cfg RateLimitConfig, now time.Time) *limiter {
	burst := max(cfg.Burst, 1)
	perMin := max(cfg.PerMinute, 1)
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &limiter{
		perToken: time.Minute / time.Duration(perMin),
		capacity: float64(burst),
		maxKeys:  cfg.MaxKeys,
		idleTTL:  ttl,
		buckets:  make(map[string]*bucket),
		swept:    now,
	}
}

// take spends one token from key's bucket. When empty it reports how long
// until the next token.
func (l *limiter) take(key string, now time.Time) (ok bool, remaining int, wait time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b := l.buckets[key]
	if b == nil {
		b = &bucket{tokens: l.capacity, last: now}
		l.buckets[key] = b
	}
	if elapsed := now.Sub(b.last); elapsed > 0 {
		b.tokens = math.Min(l.capacity, b.tokens+float64(elapsed)/float64(l.perToken))
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true, int(b.tokens), 0
	}
	return false, 0, time.Duration((1 - b.tokens) * float64(l.perToken))
}

// sweep drops idle buckets once a minute, or earlier when maxKeys is reached.
func (l *limiter) sweep(now time.Time) {
	full := l.maxKeys > 0 && len(l.buckets) >= l.maxKeys
	if !full && now.Sub(l.swept) < time.Minute {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.last) > l.idleTTL {
			delete(l.buckets, key)
		}
	}
	l.swept = now
}

// RateLimit answers 429 with Retry-After once the caller's bucket is empty.
// Callers are keyed by RateKey.
func RateLimit(cfg RateLimitConfig, log logger.Logger) func(http.Handler) http.Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	l := newLimiter(cfg, now())
	limit := strconv.Itoa(int(l.capacity))
	log = log.With(logger.Component("rate_limit"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := RateKey(r, cfg.TrustProxy)
			ok, remaining, wait := l.take(key, now())

			w.Header().Set("X-RateLimit-Limit", limit)
			if !ok {
				retry := max(int(math.Ceil(wait.Seconds())), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("X-RateLimit-Remaining", "0")
				log.Warn("bookmark writes rate limited",
					logger.String("key", key),
					logger.String("path", r.URL.Path),
					logger.Int("retry_after", retry))
				deny(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many bookmark changes, retry later")
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		})
	}
}
