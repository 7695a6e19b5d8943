package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// NoThreshold marks an unset pass threshold.
const NoThreshold = -1

// Config holds all application configuration.
type Config struct {
	// QuizDir is the directory banks are discovered in.
	QuizDir string

	// Threshold is the pass mark in percent, or NoThreshold.
	Threshold int

	// Limit caps the number of questions per session (0 = no limit).
	Limit int

	// Seed fixes the shuffle order when non-zero.
	Seed uint64

	LogLevel  string
	LogFormat string
	// LogFile receives log output; empty means stderr.
	LogFile string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		QuizDir:   getEnv("MCQUIZ_DIR", "quizzes"),
		Threshold: getEnvInt("MCQUIZ_THRESHOLD", NoThreshold),
		Limit:     getEnvInt("MCQUIZ_LIMIT", 0),
		Seed:      uint64(getEnvInt("MCQUIZ_SEED", 0)),
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "pretty"),
		LogFile:   getEnv("LOG_FILE", ""),
	}
}

// HasThreshold reports whether a pass mark is configured.
func (c *Config) HasThreshold() bool {
	return c.Threshold >= 0
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
