package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Chat     ChatConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	StaticDir      string
}

// UpstreamConfig holds the answering service endpoint configuration
type UpstreamConfig struct {
	BaseURL string
	Timeout int // seconds
}

// RedisConfig holds the conversation store backend configuration.
// Redis is used only when REDIS_ADDR is set; otherwise conversations
// live in process memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

// PostgresConfig holds the message archive configuration. The archive is
// enabled only when a DSN is present.
type PostgresConfig struct {
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool
}

// ChatConfig holds conversation defaults
type ChatConfig struct {
	DefaultLanguage string
	DefaultTopK     int
	GallerySize     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	pgDSN := getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", "")))
	redisAddr := getEnv("REDIS_ADDR", "")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StaticDir:      getEnv("STATIC_DIR", "./web/assets"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("ANSWER_SERVICE_URL", "http://localhost:9000"),
			Timeout: getEnvAsInt("ANSWER_SERVICE_TIMEOUT", 30),
		},
		Redis: RedisConfig{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  redisAddr != "",
		},
		Postgres: PostgresConfig{
			DSN:                pgDSN,
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
			Enabled:            pgDSN != "",
		},
		Chat: ChatConfig{
			DefaultLanguage: getEnv("CHAT_DEFAULT_LANGUAGE", "ko"),
			DefaultTopK:     getEnvAsInt("CHAT_DEFAULT_TOP_K", 3),
			GallerySize:     getEnvAsInt("CHAT_GALLERY_SIZE", 16),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
