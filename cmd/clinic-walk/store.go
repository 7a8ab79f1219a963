package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lixenwraith/clinic-walk/config"
	"github.com/lixenwraith/clinic-walk/leaderboard"
)

const redisPingTimeout = 2 * time.Second

// openStore picks the leaderboard backend. An unreachable Redis falls back to
// memory. The returned func releases the backend
func openStore(ctx context.Context, cfg *config.Config) (leaderboard.Store, func()) {
	switch cfg.Store.Kind {
	case config.StoreMemory:
		log.Println("leaderboard: in-memory store")
		return leaderboard.NewMemoryStore(), func() {}

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Printf("leaderboard: redis %s unreachable: %v, falling back to memory", cfg.Redis.Addr, err)
			_ = client.Close()
			return leaderboard.NewMemoryStore(), func() {}
		}
		log.Printf("leaderboard: redis store at %s", cfg.Redis.Addr)
		return leaderboard.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				log.Printf("leaderboard: closing redis: %v", err)
			}
		}
	}

	log.Printf("leaderboard: file store at %s", leaderboard.FilePath(cfg.Store.DataDir))
	return leaderboard.NewFileStore(cfg.Store.DataDir), func() {}
}
