package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"shopsync-backend/config"
)

var Redis *redis.Client

// ConnectRedis is optional: without it invitations are disabled and sign-out
// falls back to client-side token disposal.
func ConnectRedis() {
	if config.AppConfig.RedisURL == "" {
		log.Println("⚠️  REDIS_URL not set, running without Redis")
		return
	}

	opts, err := redis.ParseURL(config.AppConfig.RedisURL)
	if err != nil {
		log.Println("⚠️  Invalid REDIS_URL, running without Redis:", err)
		return
	}

	Redis = redis.NewClient(opts)

	if _, err := Redis.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️  Redis not available, running without it:", err)
		Redis = nil
		return
	}

	log.Println("✅ Redis connected successfully")
}
