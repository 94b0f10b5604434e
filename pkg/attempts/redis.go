package attempts

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "memorylane:login:"

// hitScript increments the counter, starts the window on the first hit and
// returns {count, pttl}.
var hitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {n, ttl}
`)

// RedisLimiter shares counters between instances. Keys expire with their
// window so nothing needs sweeping.
type RedisLimiter struct {
	client redis.Scripter
	cfg    Config
	prefix string
}

// NewRedisLimiter uses prefix for keys, or a default when prefix is empty.
func NewRedisLimiter(client redis.Scripter, cfg Config, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisLimiter{client: client, cfg: cfg.withDefaults(), prefix: prefix}
}

func (l *RedisLimiter) Hit(ctx context.Context, key string) (Decision, error) {
	if key == "" {
		return Decision{}, ErrEmptyKey
	}

	res, err := hitScript.Run(ctx, l.client, []string{l.prefix + key}, l.cfg.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("attempts: redis hit: %w", err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("attempts: redis hit: unexpected reply %v", res)
	}

	return decide(l.cfg, int(res[0]), time.Duration(res[1])*time.Millisecond), nil
}
