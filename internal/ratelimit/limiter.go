// Package ratelimit counts requests per key in fixed windows, in Redis when
// available and in process memory otherwise.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrUnavailable = errors.New("rate limit store unavailable")

// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
var windowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// Config holds limiter settings
type Config struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	// FailClosed rejects requests when Redis errors instead of falling back to memory
	FailClosed bool
}

// Result is the outcome of counting one request
type Result struct {
	Count   int
	Limit   int
	ResetAt time.Time
}

func (r Result) Allowed() bool { return r.Count <= r.Limit }

func (r Result) Remaining() int {
	if n := r.Limit - r.Count; n > 0 {
		return n
	}
	return 0
}

type entry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
	removed bool // set by Cleanup once the entry is out of the map
}

// Limiter is a fixed-window request counter
type Limiter struct {
	cfg    Config
	redis  *redis.Client
	logger *zap.Logger
	now    func() time.Time

	mem sync.Map // key -> *entry

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a limiter. client may be nil for memory-only counting.
func New(cfg Config, client *redis.Client, logger *zap.Logger) *Limiter {
	if cfg.Limit <= 0 {
		cfg.Limit = 5
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Limiter{
		cfg:    cfg,
		redis:  client,
		logger: logger.Named("ratelimit"),
		now:    time.Now,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.cleanupLoop(cleanupInterval(cfg.Window))
	return l
}

func cleanupInterval(window time.Duration) time.Duration {
	if window < time.Minute {
		return time.Minute
	}
	return window
}

// Config returns the effective settings
func (l *Limiter) Config() Config { return l.cfg }

// Allow counts one request for key
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	fullKey := l.cfg.KeyPrefix + key

	if l.redis != nil {
		res, err := l.allowRedis(ctx, fullKey)
		if err == nil {
			return res, nil
		}
		if l.cfg.FailClosed {
			l.logger.Error("redis rate limit failed, rejecting", zap.Error(err))
			return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		l.logger.Warn("redis rate limit failed, using memory", zap.Error(err))
	}

	return l.allowMemory(fullKey), nil
}

func (l *Limiter) allowRedis(ctx context.Context, key string) (Result, error) {
	ttlSeconds := int(l.cfg.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	out, err := windowScript.Run(ctx, l.redis, []string{key}, ttlSeconds).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	if len(out) < 2 {
		return Result{}, errors.New("unexpected redis result format")
	}

	return Result{
		Count:   int(out[0]),
		Limit:   l.cfg.Limit,
		ResetAt: l.now().Add(time.Duration(out[1]) * time.Second),
	}, nil
}

func (l *Limiter) allowMemory(key string) Result {
	now := l.now()
	for {
		v, _ := l.mem.LoadOrStore(key, &entry{resetAt: now.Add(l.cfg.Window)})
		if res, ok := l.increment(v.(*entry), now); ok {
			return res
		}
	}
}

// increment counts one request on e. It reports false when Cleanup removed
// e after it was loaded; the caller must load the key again.
func (l *Limiter) increment(e *entry, now time.Time) (Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed {
		return Result{}, false
	}
	if !now.Before(e.resetAt) {
		e.count = 0
		e.resetAt = now.Add(l.cfg.Window)
	}
	e.count++

	return Result{Count: e.count, Limit: l.cfg.Limit, ResetAt: e.resetAt}, true
}

// Cleanup drops expired in-memory windows
func (l *Limiter) Cleanup() {
	now := l.now()
	l.mem.Range(func(key, value any) bool {
		e := value.(*entry)
		e.mu.Lock()
		if !now.Before(e.resetAt) && l.mem.CompareAndDelete(key, e) {
			e.removed = true
		}
		e.mu.Unlock()
		return true
	})
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Cleanup()
		case <-l.stop:
			return
		}
	}
}

// Close stops the cleanup goroutine. The Redis client is owned by the caller.
func (l *Limiter) Close() {
	l.closeOnce.Do(func() {
		close(l.stop)
		<-l.done
	})
}
