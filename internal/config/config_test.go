package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "CLIENT_ORIGINS", "WORDS_SOURCE",
		"WORDS_FILE", "WORDS_DB", "DAILY_TZ", "REQUEST_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, ":5175", c.Addr())
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, c.ClientOrigins)
	assert.Equal(t, SourceEmbedded, c.WordsSource)
	assert.Equal(t, "./data/words.db", c.WordsDB)
	assert.Equal(t, "UTC", c.DailyTZ)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("CLIENT_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("WORDS_SOURCE", "file")
	t.Setenv("WORDS_FILE", "/tmp/words.yaml")
	t.Setenv("DAILY_TZ", "Europe/Rome")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "console", c.LogFormat)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.ClientOrigins)
	assert.Equal(t, SourceFile, c.WordsSource)
	assert.Equal(t, "/tmp/words.yaml", c.WordsFile)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)

	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Rome", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"file source without path": {"WORDS_SOURCE": "file"},
		"unknown source":           {"WORDS_SOURCE": "redis"},
		"unknown log format":       {"LOG_FORMAT": "xml"},
		"bad timeout":              {"REQUEST_TIMEOUT": "soon"},
		"negative timeout":         {"REQUEST_TIMEOUT": "-1s"},
		"bad zone":                 {"DAILY_TZ": "Mars/Olympus"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
