package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

const (
	DefaultChannelID      = "UC9ARnNhPen6bRFYBoYZ56DQ"
	DefaultMaxResults     = 6
	DefaultBaseURL        = "https://www.googleapis.com/youtube/v3"
	DefaultRequestTimeout = 10 * time.Second
	DefaultPort           = "8080"
	DefaultEnvironment    = "production"

	// The playlistItems endpoint never returns more than 50 items per page.
	maxPageSize = 50
)

var defaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey  string
	ChannelID      string
	MaxResults     int
	YouTubeBaseURL string
	RequestTimeout time.Duration

	Environment    string
	Port           string
	AllowedOrigins []string
	DiagnosticsDSN string
}

// Load loads the configuration from environment variables.
// A missing API key is not an error here: the video gateway reports it per request.
func Load() (*Config, error) {
	cfg := &Config{
		YouTubeAPIKey:  strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		ChannelID:      getEnv("YOUTUBE_CHANNEL_ID", DefaultChannelID),
		MaxResults:     DefaultMaxResults,
		YouTubeBaseURL: strings.TrimRight(getEnv("YOUTUBE_API_BASE_URL", DefaultBaseURL), "/"),
		RequestTimeout: DefaultRequestTimeout,
		Environment:    environment(),
		Port:           getEnv("PORT", DefaultPort),
		AllowedOrigins: defaultAllowedOrigins,
		DiagnosticsDSN: os.Getenv("DIAGNOSTICS_DB_URL"),
	}

	if raw := os.Getenv("YOUTUBE_MAX_RESULTS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid YOUTUBE_MAX_RESULTS %q: %w", raw, err)
		}
		if n < 1 || n > maxPageSize {
			return nil, fmt.Errorf("YOUTUBE_MAX_RESULTS must be between 1 and %d, got %d", maxPageSize, n)
		}
		cfg.MaxResults = n
	}

	if raw := os.Getenv("YOUTUBE_REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid YOUTUBE_REQUEST_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("YOUTUBE_REQUEST_TIMEOUT must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	if origins := splitList(os.Getenv("CORS_ALLOWED_ORIGINS")); len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}

// VerboseErrors reports whether error responses may carry failure details.
func (c *Config) VerboseErrors() bool {
	return c.Environment == "development"
}

func environment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("NODE_ENV"); env != "" {
		return env
	}
	return DefaultEnvironment
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
