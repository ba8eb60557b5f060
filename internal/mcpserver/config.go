package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server limits.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxSources caps the sources array of the concat tool.
	MaxSources int

	// MaxSourceBytes caps each file or inline source.
	MaxSourceBytes int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SRCBUNDLE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxSources:     envInt("SRCBUNDLE_MAX_SOURCES", 64),
		MaxSourceBytes: envInt("SRCBUNDLE_MAX_SOURCE_BYTES", 4*1024*1024),
	}
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
