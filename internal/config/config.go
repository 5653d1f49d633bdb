package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultHost           = "0.0.0.0"
	DefaultPort    uint16 = 5000
	DefaultAppEnv         = "development"
	DefaultRateBurst      = 5
)

// Config is the process configuration, sourced from the environment.
type Config struct {
	Host   string
	Port   uint16
	Debug  bool
	AppEnv string

	// RateLimitRPS is requests per second per client IP; 0 disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string
}

// Load reads an optional .env file and then the process environment.
// Values already present in the environment win over the file.
func Load() Config {
	_ = godotenv.Load()
	return LoadFrom(os.Getenv)
}

// LoadFrom builds a Config from getenv. Malformed values silently fall back
// to their defaults.
func LoadFrom(getenv func(string) string) Config {
	cfg := Config{
		Host:               getString(getenv, "HOST", DefaultHost),
		Port:               DefaultPort,
		Debug:              strings.ToLower(getenv("DEBUG")) == "true",
		AppEnv:             getString(getenv, "APP_ENV", DefaultAppEnv),
		RateLimitBurst:     DefaultRateBurst,
		CORSAllowedOrigins: []string{"*"},
	}

	if p, err := strconv.ParseUint(getenv("PORT"), 10, 16); err == nil {
		cfg.Port = uint16(p)
	}

	if rps, err := strconv.ParseFloat(getenv("RATE_LIMIT_RPS"), 64); err == nil && rps > 0 {
		cfg.RateLimitRPS = rps
	}
	if burst, err := strconv.Atoi(getenv("RATE_LIMIT_BURST")); err == nil && burst > 0 {
		cfg.RateLimitBurst = burst
	}

	if raw := getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSAllowedOrigins = origins
		}
	}

	return cfg
}

func getString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
