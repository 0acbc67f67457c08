// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrConfig indicates a malformed setting.
var ErrConfig = errors.New("config: invalid setting")

// Input sources.
const (
	SourceFile  = "file"
	SourceNeo4j = "neo4j"
)

// Neo4j holds the connection settings for the graph database source.
type Neo4j struct {
	URI      string
	User     string
	Password string
	Database string
}

// Config is the resolved process configuration.
type Config struct {
	DataFile      string
	Sheet         string
	Source        string
	HistogramFile string
	HistogramBins int
	CacheTTL      time.Duration
	HTTPAddr      string
	LogLevel      slog.Level
	LogFormat     string
	Neo4j         Neo4j
}

// Load reads the environment. Without arguments it first loads ./.env if
// present; named files must exist. Variables already set in the environment
// win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: dotenv: %w", ErrConfig, err)
		}
	}

	cfg := Config{
		DataFile:      getEnv("TUBE_DATA_FILE", "./London Underground data.xlsx"),
		Sheet:         getEnv("TUBE_SHEET", ""),
		Source:        strings.ToLower(getEnv("TUBE_SOURCE", SourceFile)),
		HistogramFile: getEnv("TUBE_HISTOGRAM_FILE", "journey_times.png"),
		HTTPAddr:      getEnv("TUBE_HTTP_ADDR", ":8080"),
		LogFormat:     strings.ToLower(getEnv("TUBE_LOG_FORMAT", "text")),
		Neo4j: Neo4j{
			URI:      getEnv("NEO4J_URI", "bolt://localhost:7687"),
			User:     getEnv("NEO4J_USER", "neo4j"),
			Password: getEnv("NEO4J_PASSWORD", ""),
			Database: getEnv("NEO4J_DATABASE", ""),
		},
	}

	var err error
	if cfg.HistogramBins, err = getEnvAsInt("TUBE_HISTOGRAM_BINS", 20); err != nil {
		return Config{}, err
	}
	if cfg.HistogramBins <= 0 {
		return Config{}, fmt.Errorf("%w: TUBE_HISTOGRAM_BINS must be positive, got %d", ErrConfig, cfg.HistogramBins)
	}
	if cfg.CacheTTL, err = getEnvAsDuration("TUBE_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv("TUBE_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("%w: TUBE_LOG_LEVEL: %w", ErrConfig, err)
	}

	switch cfg.Source {
	case SourceFile, SourceNeo4j:
	default:
		return Config{}, fmt.Errorf("%w: TUBE_SOURCE must be %q or %q, got %q", ErrConfig, SourceFile, SourceNeo4j, cfg.Source)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("%w: TUBE_LOG_FORMAT must be text or json, got %q", ErrConfig, cfg.LogFormat)
	}

	return cfg, nil
}

// Logger builds the process logger writing to w.
func Logger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	s := getEnv(key, "")
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrConfig, key, err)
	}

	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	s := getEnv(key, "")
	if s == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrConfig, key, err)
	}

	return v, nil
}
