package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled    bool
	CacheMaxSize    int // per input kind
	CacheFileTTL    time.Duration
	CacheURLTTL     time.Duration
	CacheContentTTL time.Duration

	// Inspect tool defaults.
	InspectLimit       int
	InspectDetailLimit int
	MaxLimit           int

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Compile and sample defaults.
	Language    string
	SampleSeed  int64
	SampleDepth int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from XSDMODEL_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("XSDMODEL_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("XSDMODEL_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("XSDMODEL_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("XSDMODEL_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("XSDMODEL_CACHE_CONTENT_TTL", 15*time.Minute),
		InspectLimit:       envInt("XSDMODEL_INSPECT_LIMIT", 100),
		InspectDetailLimit: envInt("XSDMODEL_INSPECT_DETAIL_LIMIT", 25),
		MaxLimit:           envInt("XSDMODEL_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("XSDMODEL_MAX_INLINE_SIZE", 10*1024*1024)),
		AllowPrivateIPs:    envBool("XSDMODEL_ALLOW_PRIVATE_IPS", false),
		Language:           envLanguage("XSDMODEL_LANGUAGE"),
		SampleSeed:         int64(envInt("XSDMODEL_SAMPLE_SEED", 1)),
		SampleDepth:        envInt("XSDMODEL_SAMPLE_DEPTH", 4),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// Target languages of the compile tool.
const (
	langTypeScript = "ts"
	langGo         = "go"
)

func envLanguage(key string) string {
	v := os.Getenv(key)
	switch v {
	case "":
		return langTypeScript
	case langTypeScript, langGo:
		return v
	}
	slog.Warn("invalid language env var, using default", "key", key, "value", v, "default", langTypeScript)
	return langTypeScript
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
