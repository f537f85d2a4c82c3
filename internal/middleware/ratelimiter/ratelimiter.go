package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single key. With a window set it is a fixed
// window counter instead: full at windowStart, no refill until the window ends.
type bucket struct {
	tokens      float64
	capacity    float64
	rate        float64 // tokens per second
	lastRefill  time.Time
	window      time.Duration
	windowStart time.Time
	mu         sync.Mutex
	timer      *time.Timer
	key        string
	parent     *RateLimiter
}

// RateLimiter keeps one bucket per key. Buckets that are not touched for
// expiration are dropped.
type RateLimiter struct {
	buckets    map[string]*bucket
	mu         sync.RWMutex
	rate       float64
	capacity   float64
	window     time.Duration
	expiration time.Duration
	now        func() time.Time
}

func New(rate float64, capacity float64, expiration time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		now:        time.Now,
	}
}

// PerWindow builds a fixed window limiter: at most attempts requests per key
// within window, counted from the key's first request.
func PerWindow(attempts int, window time.Duration) *RateLimiter {
	rl := New(0, float64(attempts), window)
	rl.window = window
	return rl
}

func (rl *RateLimiter) cleanup(key string) {
	rl.mu.Lock()
	delete(rl.buckets, key)
	rl.mu.Unlock()
}

func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expiration, func() {
		b.parent.cleanup(b.key)
	})
}

func (rl *RateLimiter) getBucket(key string) *bucket {
	rl.mu.RLock()
	b, exists := rl.buckets[key]
	rl.mu.RUnlock()

	if exists {
		b.mu.Lock()
		b.resetTimer()
		b.mu.Unlock()
		return b
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// double-check after acquiring write lock
	if b, exists = rl.buckets[key]; exists {
		b.mu.Lock()
		b.resetTimer()
		b.mu.Unlock()
		return b
	}

	b = &bucket{
		tokens:      rl.capacity,
		capacity:    rl.capacity,
		rate:        rl.rate,
		lastRefill:  rl.now(),
		window:      rl.window,
		windowStart: rl.now(),
		key:         key,
		parent:      rl,
	}
	rl.buckets[key] = b
	b.resetTimer()

	return b
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.window > 0 {
		if !now.Before(b.windowStart.Add(b.window)) {
			b.tokens = b.capacity
			b.windowStart = now
		}
	} else if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens += elapsed * b.rate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.lastRefill = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow reports whether a request for key fits into its bucket and takes a
// token if it does.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getBucket(key).allow(rl.now())
}

// Stop cancels all expiration timers.
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for _, b := range rl.buckets {
		b.mu.Lock()
		if b.timer != nil {
			b.timer.Stop()
		}
		b.mu.Unlock()
	}
}
