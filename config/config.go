package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime knobs for the API process.
type Config struct {
	HTTPAddr        string
	DBDriver        string // "postgres" or "memory"
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	RedisAddr       string
	CORSOrigins     []string
	SeedData        bool
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load collects configuration from .env / environment with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Error Loading .env file")
	}
	origins := strings.Split(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		DBDriver:        getenv("DB_DRIVER", "postgres"),
		DBHost:          getenv("DB_HOST", "127.0.0.1"),
		DBPort:          getenv("DB_PORT", "5432"),
		DBUser:          getenv("DB_USER", "postgres"),
		DBPassword:      getenv("DB_PASSWORD", ""),
		DBName:          getenv("DB_NAME", "products"),
		RedisAddr:       getenv("REDIS_ADDR", "127.0.0.1:6379"),
		CORSOrigins:     origins,
		SeedData:        boolenv("SEED_DATA", true),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
	}
}
