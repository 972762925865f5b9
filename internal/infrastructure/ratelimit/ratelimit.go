package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/Pavel771123/nataliya/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// slidingWindow drops hits older than the window, then records the new hit if the remaining
// count is below the limit. Returns 1 when the hit is allowed.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, ARGV[2])

if redis.call('ZCARD', key) < limit then
	redis.call('ZADD', key, ARGV[1], ARGV[5])
	redis.call('PEXPIRE', key, ARGV[4])
	return 1
end

return 0
`)

type Redis struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedis(client *redis.Client, cfg config.RateLimit) *Redis {
	return &Redis{
		client: client,
		limit:  int64(cfg.Requests),
		window: cfg.Window,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Useful in tests.
func (r *Redis) WithClock(now func() time.Time) *Redis {
	r.now = now
	return r
}

// Allow records a hit for key and reports whether it fits into the window.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	now := r.now().UnixNano()
	windowStart := now - r.window.Nanoseconds()

	result, err := slidingWindow.Run(ctx, r.client,
		[]string{keyPrefix + key},
		now, windowStart, r.limit, r.window.Milliseconds(), uuid.NewString(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return result == 1, nil
}

// NoOp allows every request.
type NoOp struct{}

func (NoOp) Allow(context.Context, string) (bool, error) {
	return true, nil
}
