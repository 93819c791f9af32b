package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dcode-github/nestora/backend/utils"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisErr    error
	redisOnce   sync.Once
)

// InitRedis connects once; later calls return the same client or error.
func InitRedis(addr, password string) (*redis.Client, error) {
	redisOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := client.Ping(ctx).Result(); err != nil {
			_ = client.Close()
			redisErr = fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
			return
		}
		utils.Logger.Infof("Connected to Redis at %s", addr)
		redisClient = client
	})
	return redisClient, redisErr
}
