package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisURI string

// InitRedis เชื่อมต่อ Redis ถ้ามี REDIS_URI; ไม่มีก็ทำงานต่อได้แบบไม่มี cache/queue
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI") // เช่น localhost:6379
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Running without Redis cache and job queue.")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("⚠️ Failed to connect Redis (%s): %v. Running without Redis.", RedisURI, err)
		_ = client.Close()
		RedisURI = ""
		return
	}
	RedisClient = client
	log.Println("✅ Redis connected successfully")
}
