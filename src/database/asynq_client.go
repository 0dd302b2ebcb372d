package database

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// AsynqRedisOpt ค่าเชื่อมต่อ Redis ที่ client และ worker ใช้ร่วมกัน
func AsynqRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: RedisURI, Password: os.Getenv("REDIS_PASSWORD")}
}

// InitAsynq initializes Asynq client only if Redis is available
func InitAsynq() {
	// Check if Redis is available (RedisClient != nil means InitRedis was successful)
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(AsynqRedisOpt())
	log.Println("✅ Asynq Client initialized successfully")
}
