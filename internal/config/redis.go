package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	Ctx   = context.Background()
	Redis *redis.Client
)

// InitRedis - opsional, nil kalau REDIS_ADDR kosong
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR kosong, penanda kirim absensi dimatikan")
		return nil
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := Redis.Ping(Ctx).Err(); err != nil {
		log.Fatal("Redis tidak nyambung:", err)
	}

	log.Println("Redis connected (DB", cfg.RedisDB, ")")
	return Redis
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
