package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oasexplorer/example"
)

// serverConfig holds the tool defaults read from OASEXPLORER_* variables.
type serverConfig struct {
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// MaxDepth is the default example nesting limit.
	MaxDepth int

	// RowLimit is the default page size for flatten_schema and list_operations.
	RowLimit int
	MaxLimit int

	// MaxInlineSize caps inline spec content in bytes.
	MaxInlineSize int64
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASEXPLORER_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASEXPLORER_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASEXPLORER_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OASEXPLORER_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASEXPLORER_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxDepth:           envInt("OASEXPLORER_MAX_DEPTH", example.DefaultMaxDepth),
		RowLimit:           envInt("OASEXPLORER_ROW_LIMIT", 200),
		MaxLimit:           envInt("OASEXPLORER_MAX_LIMIT", 1000),
		MaxInlineSize:      envInt64("OASEXPLORER_MAX_INLINE_SIZE", 10*1024*1024),
	}
}

// envValue parses the environment variable key with parse. Unset keys and
// values that fail to parse (or parse to a non-positive number) yield fallback.
func envValue[T any](key string, fallback T, parse func(string) (T, error), ok func(T) bool) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil || (ok != nil && !ok(v)) {
		slog.Warn("ignoring invalid environment value", "key", key, "value", raw, "default", fallback) //nolint:gosec // G706: structured fields
		return fallback
	}
	return v
}

func positive[T int | int64 | time.Duration](v T) bool { return v > 0 }

func envBool(key string, fallback bool) bool {
	return envValue(key, fallback, strconv.ParseBool, nil)
}

func envInt(key string, fallback int) int {
	return envValue(key, fallback, strconv.Atoi, positive[int])
}

func envInt64(key string, fallback int64) int64 {
	return envValue(key, fallback, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}, positive[int64])
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return envValue(key, fallback, time.ParseDuration, positive[time.Duration])
}
