package devserver

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the dev backend.
type Config struct {
	Host     string
	Port     string
	Version  string
	LogLevel string

	// JWTSecret signs access tokens. The default is only suitable for
	// local development.
	JWTSecret     string
	TokenTTLHours int
	BcryptCost    int

	// RedisAddr points trending at an external redis. Empty means an
	// embedded miniredis is started in-process.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Seeded admin account, created at startup when it does not exist.
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment, applying defaults.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Host:          getEnv("FLICKSYD_HOST", "127.0.0.1"),
		Port:          getEnv("FLICKSYD_PORT", "8080"),
		Version:       getEnv("FLICKSYD_VERSION", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		JWTSecret:     getEnv("AUTH_JWT_SECRET", "flicksy-dev-secret"),
		TokenTTLHours: getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24),
		BcryptCost:    getEnvAsInt("AUTH_BCRYPT_COST", 10),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		AdminUsername: getEnv("FLICKSYD_ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("FLICKSYD_ADMIN_PASSWORD", "admin123"),
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
