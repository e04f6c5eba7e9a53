package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL            string
	RedisAddr              string
	RedisPassword          string
	RedisDB                int
	NotificationTTLSeconds int
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Unset backends mean in-memory state.
func Load() Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	ttl, err := strconv.Atoi(getEnv("NOTIFICATION_TTL_SECONDS", "4"))
	if err != nil || ttl < 1 {
		ttl = 4
	}

	return Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                redisDB,
		NotificationTTLSeconds: ttl,
	}
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
