package rate_limit

import (
	"context"
	"fmt"
	"math"
	"time"

	"jobtracker/internal/cache"
)

type RateLimiter struct {
	keyPrefix  string
	rpsLimit   float64
	burstLimit int
}

type RateLimitResult struct {
	Allowed       bool      `json:"allowed"`
	Remaining     int       `json:"remaining"`
	ResetTime     time.Time `json:"resetTime"`
	RetryAfterSec int       `json:"retryAfterSec,omitempty"`
}

const (
	defaultTimeout = 5 * time.Second
	bucketTTLSec   = 600
)

// Token bucket evaluated atomically inside Valkey. Rates are expressed in
// tokens per second and may be fractional (e.g. 10 per minute).
const tokenBucketLuaScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local burst = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local current = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(current[1]) or burst
local last_refill = tonumber(current[2]) or now

local elapsed = math.max(0, now - last_refill)
tokens = math.min(burst, tokens + (elapsed * rate / 1000))

local allowed = 0
if tokens >= 1 then
    allowed = 1
    tokens = tokens - 1
end

redis.call('HMSET', key, 'tokens', tostring(tokens), 'last_refill', now)
redis.call('EXPIRE', key, ttl)

local time_to_full = 0
if tokens < burst then
    time_to_full = math.ceil((burst - tokens) * 1000 / rate)
end

return {allowed, math.floor(tokens), time_to_full}
`

// NewRateLimiter creates a limiter for one concern (sign-in, export...). The
// Valkey client is resolved on first use.
func NewRateLimiter(keyPrefix string, perMinute int, burstLimit int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burstLimit <= 0 {
		burstLimit = perMinute
	}

	return &RateLimiter{
		keyPrefix:  "rate_limit:" + keyPrefix + ":",
		rpsLimit:   float64(perMinute) / 60.0,
		burstLimit: burstLimit,
	}
}

func (r *RateLimiter) CheckRateLimit(subject string) (*RateLimitResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client := cache.GetCache()
	now := time.Now().UnixMilli()

	result := client.Do(ctx, client.B().Eval().
		Script(tokenBucketLuaScript).
		Numkeys(1).
		Key(r.keyPrefix+subject).
		Arg(fmt.Sprintf("%d", now)).
		Arg(fmt.Sprintf("%f", r.rpsLimit)).
		Arg(fmt.Sprintf("%d", r.burstLimit)).
		Arg(fmt.Sprintf("%d", bucketTTLSec)).
		Build())

	if result.Error() != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", result.Error())
	}

	values, err := result.AsIntSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit result: %w", err)
	}

	if len(values) < 3 {
		return nil, fmt.Errorf("invalid rate limit result: expected 3 values, got %d", len(values))
	}

	allowed := values[0] == 1

	var retryAfterSec int
	if !allowed {
		retryAfterSec = max(1, int(math.Ceil(1.0/r.rpsLimit)))
	}

	return &RateLimitResult{
		Allowed:       allowed,
		Remaining:     int(values[1]),
		ResetTime:     time.Now().Add(time.Duration(values[2]) * time.Millisecond),
		RetryAfterSec: retryAfterSec,
	}, nil
}

func (r *RateLimiter) ResetRateLimit(subject string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client := cache.GetCache()
	return client.Do(ctx, client.B().Del().Key(r.keyPrefix+subject).Build()).Error()
}
