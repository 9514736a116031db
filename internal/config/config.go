package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port                string
	AdminPort           string
	DBPath              string
	SeedFile            string
	RateLimitRPS        float64
	RateLimitBurst      int
	GinMode             string
	JWTSecret           string
	TokenTTL            time.Duration
	MeetingLinkBase     string
	VirtualPitchBaseURL string
	CORSOrigins         []string
}

func Load() *Config {
	return &Config{
		Port:                envOrDefault("PORT", "8080"),
		AdminPort:           envOrDefault("ADMIN_PORT", "9090"),
		DBPath:              envOrDefault("DB_PATH", "/data/meetings.db"),
		SeedFile:            os.Getenv("SEED_FILE"),
		RateLimitRPS:        envOrDefaultFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:      envOrDefaultInt("RATE_LIMIT_BURST", 20),
		GinMode:             envOrDefault("GIN_MODE", "release"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenTTL:            envOrDefaultDuration("TOKEN_TTL", 24*time.Hour),
		MeetingLinkBase:     envOrDefault("MEETING_LINK_BASE", "https://meet.arthankur.app/"),
		VirtualPitchBaseURL: envOrDefault("VIRTUAL_PITCH_BASE_URL", "/virtual-pitch/"),
		CORSOrigins:         envOrDefaultList("CORS_ORIGINS", []string{"*"}),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envOrDefaultFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// envOrDefaultList splits a comma-separated value, dropping blank entries.
func envOrDefaultList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
