package ratelimiter

import (
	"sync"
	"time"

	"github.com/SeakMengs/name2ecert/internal/config"
	"github.com/SeakMengs/name2ecert/internal/util"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter keeps one token bucket per client key. A bucket refills
// RequestsPerTimeFrame tokens every TimeFrame and holds at most that many.
type ClientRateLimiter struct {
	cfg    config.RateLimiterConfig
	logger *zap.SugaredLogger
	limit  rate.Limit
	burst  int

	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *ClientRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("test")
	}

	burst := max(cfg.RequestsPerTimeFrame, 1)
	timeFrame := cfg.TimeFrame
	if timeFrame <= 0 {
		timeFrame = time.Minute
	}

	return &ClientRateLimiter{
		cfg:      cfg,
		logger:   logger,
		limit:    rate.Limit(float64(burst) / timeFrame.Seconds()),
		burst:    burst,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (rl *ClientRateLimiter) Enabled() bool {
	return rl.cfg.Enabled
}

// Allow reports whether key may make a request now and how long it should wait otherwise.
func (rl *ClientRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	reservation := v.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}

	reservation.CancelAt(now)
	rl.logger.Debugw("Rate limit exceeded", "client", key, "retryAfter", delay)
	return false, delay
}

// Cleanup forgets clients idle for longer than one time frame.
func (rl *ClientRateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-max(rl.cfg.TimeFrame, time.Minute))
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
		}
	}
}

// StartCleanup runs Cleanup every interval until stop is closed.
func (rl *ClientRateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}
