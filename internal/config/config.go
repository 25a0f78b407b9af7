package config

import (
	"os"
	"strconv"

	"quiz_backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string
	DataDir   string
	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limits
	AuthRateLimit    int
	AuthRateWindow   int // seconds
	SubmitRateLimit  int
	SubmitRateWindow int // seconds
}

// Load reads configuration from the environment (.env honored if present).
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3001"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateLimit = n
		}
	}

	authRateWindow := 60
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateWindow = n
		}
	}

	submitRateLimit := 60
	if v := os.Getenv("SUBMIT_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			submitRateLimit = n
		}
	}

	submitRateWindow := 60
	if v := os.Getenv("SUBMIT_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			submitRateWindow = n
		}
	}

	return &Config{
		AppPort:          port,
		DataDir:          dataDir,
		JWTSecret:        jwtSecret,
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          redisDB,
		AuthRateLimit:    authRateLimit,
		AuthRateWindow:   authRateWindow,
		SubmitRateLimit:  submitRateLimit,
		SubmitRateWindow: submitRateWindow,
	}
}
