package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedisClient connects to url. An empty url returns nil, which callers
// treat as "caching disabled".
func NewRedisClient(lc fx.Lifecycle, url string) (*redis.Client, error) {
	if url == "" {
		log.Println("REDIS_URL is not set, record cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Connecting to Redis...")
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			log.Println("Redis connected")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Closing Redis...")
			return client.Close()
		},
	})

	return client, nil
}
