// README: Config loader with env defaults for HTTP, Redis, and holiday sources.
package config

import (
	"os"
	"strconv"
)

type HolidayConfig struct {
	URL          string
	FallbackPath string
	Computed     bool
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Holiday        HolidayConfig
	RefreshSeconds int
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TOLL_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("TOLL_REDIS_ADDR", "localhost:6379")
	cfg.Holiday.URL = envOrDefault("TOLL_HOLIDAY_URL", "https://www.1823.gov.hk/common/ical/tc.json")
	cfg.Holiday.FallbackPath = envOrDefault("TOLL_HOLIDAY_FALLBACK", "")
	cfg.Holiday.Computed = envOrDefaultBool("TOLL_HOLIDAY_COMPUTED", false)
	cfg.RefreshSeconds = envOrDefaultInt("TOLL_REFRESH_SECONDS", 60)
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

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
