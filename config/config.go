package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const DefaultBaseURL = "https://www.gamerpower.com/api"

type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	HTTPRetries int
	LogMode     string
	HTTPAddr    string
	OutputDir   string
	TgToken     string
	TgChatID    int64
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the process-wide configuration, loading it on first use.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("[config] no .env file found, using process environment")
		}
		config = Load()
	})
	return config
}

// Load reads the configuration from the environment without touching .env files.
func Load() *Config {
	return &Config{
		BaseURL:     getEnv("GAMERPOWER_BASE_URL", DefaultBaseURL),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		HTTPRetries: getEnvInt("HTTP_RETRIES", 2),
		LogMode:     getEnv("LOG_MODE", "dev"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8005"),
		OutputDir:   getEnv("OUTPUT_DIR", "./output"),
		TgToken:     getEnv("TG_TOKEN", ""),
		TgChatID:    int64(getEnvInt("TG_CHAT_ID", 0)),
	}
}

// TelegramEnabled reports whether both the bot token and the target chat are set.
func (c *Config) TelegramEnabled() bool {
	return c.TgToken != "" && c.TgChatID != 0
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
