// internal/config/config.go
//
// Process configuration read from the environment.
// main loads a .env file (godotenv) before calling Load, so values there
// behave like real environment variables.
//
// Environment variables:
//   PORT=5175
//   LOG_LEVEL=info                 (zerolog level name)
//   LOG_FORMAT=json                (json | console)
//   CLIENT_ORIGINS=http://localhost:5173,http://127.0.0.1:5173
//   WORDS_SOURCE=embedded          (embedded | file | sqlite)
//   WORDS_FILE=/path/to/words.json (.json, .yaml or .yml; WORDS_SOURCE=file)
//   WORDS_DB=./data/words.db       (WORDS_SOURCE=sqlite)
//   DAILY_TZ=UTC                   (IANA zone that defines "today")
//   REQUEST_TIMEOUT=10s

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // DAILY_TZ must resolve even without a system zoneinfo
)

// Corpus source kinds.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

// Config is the resolved process configuration.
type Config struct {
	Port           string
	LogLevel       string
	LogFormat      string
	ClientOrigins  []string
	WordsSource    string
	WordsFile      string
	WordsDB        string
	DailyTZ        string
	RequestTimeout time.Duration
}

// Load reads Config from the environment, applying defaults.
func Load() (Config, error) {
	c := Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "json")),
		ClientOrigins: splitList(getEnv("CLIENT_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		WordsSource:   strings.ToLower(getEnv("WORDS_SOURCE", SourceEmbedded)),
		WordsFile:     os.Getenv("WORDS_FILE"),
		WordsDB:       getEnv("WORDS_DB", "./data/words.db"),
		DailyTZ:       getEnv("DAILY_TZ", "UTC"),
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("config: REQUEST_TIMEOUT: %w", err)
	}
	c.RequestTimeout = timeout

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.WordsSource {
	case SourceEmbedded, SourceSQLite:
	case SourceFile:
		if c.WordsFile == "" {
			return fmt.Errorf("config: WORDS_SOURCE=file requires WORDS_FILE")
		}
	default:
		return fmt.Errorf("config: unknown WORDS_SOURCE %q", c.WordsSource)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves DailyTZ.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DailyTZ)
	if err != nil {
		return nil, fmt.Errorf("config: DAILY_TZ: %w", err)
	}
	return loc, nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string { return ":" + c.Port }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
