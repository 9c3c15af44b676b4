package main

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string
	DBPath        string
	SeedPath      string
	SecureCookies bool
	// AllowedOrigins are exact CORS origins; http://localhost:* is always allowed.
	AllowedOrigins []string

	SessionLength     int
	AnimationMode     string
	LaunchDuration    time.Duration
	TransitionTimeout time.Duration
	SessionIdleTTL    time.Duration
	RandomSeed        *int64

	LogLevel  string
	LogFormat string
}

func LoadConfig() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "quiz.db"),
		SeedPath:          getEnv("SEED_PATH", "data/questions.json"),
		SecureCookies:     getEnv("SECURE_COOKIES", "false") == "true",
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "")),
		SessionLength:     getEnvInt("SESSION_LENGTH", 5),
		AnimationMode:     getEnv("ANIMATION_MODE", AnimationClient),
		LaunchDuration:    getEnvDuration("LAUNCH_DURATION", 4*time.Second),
		TransitionTimeout: getEnvDuration("TRANSITION_TIMEOUT", 0),
		SessionIdleTTL:    getEnvDuration("SESSION_IDLE_TTL", 2*time.Hour),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}
	if v, ok := os.LookupEnv("RANDOM_SEED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.RandomSeed = &n
		}
	}
	if cfg.SessionLength <= 0 {
		cfg.SessionLength = 5
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
