package replycache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redis is a Cache kept in redis, so replies survive across several bot
// processes sharing the same data. Keys are namespaced by Prefix.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// DefaultPrefix namespaces cache keys.
const DefaultPrefix = "bagelbot:reply:"

// NewRedis creates a redis-backed cache. A zero ttl keeps replies until
// Clear.
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

// Get returns the cached reply for key.
func (c *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "redis get")
	}
	return v, true, nil
}

// Set caches reply for key.
func (c *Redis) Set(ctx context.Context, key, reply string) error {
	return errors.Wrap(c.client.Set(ctx, c.prefix+key, reply, c.ttl).Err(), "redis set")
}

// Clear deletes every key under the cache prefix.
func (c *Redis) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrap(err, "redis del")
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "redis scan")
	}
	if len(batch) > 0 {
		return errors.Wrap(c.client.Del(ctx, batch...).Err(), "redis del")
	}
	return nil
}
