package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	ActiveLearning ActiveLearningConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
	NatsURL     string
}

type DatabaseConfig struct {
	Connection string
}

type ActiveLearningConfig struct {
	// DefaultStrategy names the sampling strategy used when a session
	// does not pick one explicitly.
	DefaultStrategy string

	// SessionTTL bounds how long an idle session survives before its
	// state is evicted.
	SessionTTL time.Duration

	ScoreThreshold float64
	MaxSuggestions int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "app.log"),
			NatsURL:     getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		ActiveLearning: ActiveLearningConfig{
			DefaultStrategy: getEnv("AL_DEFAULT_STRATEGY", "uncertainty_sampling"),
			SessionTTL:      getEnvAsDuration("AL_SESSION_TTL", 8*time.Hour),
			ScoreThreshold:  getEnvAsFloat("AL_SCORE_THRESHOLD", 0),
			MaxSuggestions:  getEnvAsInt("AL_MAX_SUGGESTIONS", 3),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
