package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "rate_limit:"

// incrWindow incrementa el contador y le pone TTL en la misma operación atómica.
// Una clave sin TTL (PTTL < 0) también recibe la expiración.
var incrWindow = goredis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisLimiter ventana fija compartida entre réplicas: INCR por clave y EXPIRE al crearla.
type RedisLimiter struct {
	client *goredis.Client
	limit  int64
	window time.Duration
}

// NewRedisLimiter permite limit peticiones por window y clave.
func NewRedisLimiter(client *goredis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), window: window}
}

// Allow incrementa el contador de la ventana actual.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := incrWindow.Run(ctx, l.client, []string{redisKeyPrefix + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	return count <= l.limit, nil
}
