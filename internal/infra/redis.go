package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client backing the report summary cache. The server
// treats redis as optional, so a connection failure is reported here and
// handled by the caller instead of aborting startup.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
