// README: Config loader with env defaults for HTTP, DB, Redis, maps, pricing, and logging.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	// DB is optional; an empty DSN serves the built-in venue and pricing tables.
	DB struct {
		DSN string
	}
	// Redis backs saved places; an empty address disables them.
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	Pricing struct {
		Location *time.Location
	}
	Log struct {
		Level string
	}
}

// Load reads a .env file from the working directory when one exists, then
// the process environment. Variables already set are not overridden.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return fromEnv()
}

func fromEnv() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("EVENTRIDE_HTTP_ADDR", ":8080")
	cfg.HTTP.ShutdownTimeout = time.Duration(envOrDefaultInt("EVENTRIDE_SHUTDOWN_SECONDS", 10)) * time.Second
	cfg.DB.DSN = os.Getenv("EVENTRIDE_DB_DSN")
	cfg.Redis.Addr = os.Getenv("EVENTRIDE_REDIS_ADDR")
	cfg.Maps.APIKey = os.Getenv("EVENTRIDE_MAPS_API_KEY")
	cfg.Log.Level = envOrDefault("EVENTRIDE_LOG_LEVEL", "info")

	tz := envOrDefault("EVENTRIDE_PRICING_TZ", "America/New_York")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("EVENTRIDE_PRICING_TZ %q: %w", tz, err)
	}
	cfg.Pricing.Location = loc
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
