package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("INSTANCE_URL", "https://example.social")
	t.Setenv("INSTANCE_ACCESS_TOKEN", "secret")
	t.Setenv("INSTANCE_STREAMING_URL", "wss://streaming.example.social")
	t.Setenv("INSTANCE_REQUEST_TIMEOUT", "7s")
	t.Setenv("TIMELINE_PAGE_SIZE", "25")
	t.Setenv("TIMELINE_LOOKAHEAD", "3")
	t.Setenv("TIMELINE_DEFAULT", "local")
	t.Setenv("STORAGE_DB_DSN", "/tmp/cache.db")
	t.Setenv("WORKERS_SNAPSHOT_INTERVAL", "2m")
	t.Setenv("LOG_FILE", "/tmp/tootline.log")
	t.Setenv("CONFIG", "/etc/tootline.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, StructuredConfig{
		Instance: Instance{
			URL:            "https://example.social",
			AccessToken:    "secret",
			StreamingURL:   "wss://streaming.example.social",
			RequestTimeout: 7 * time.Second,
		},
		Timeline:     Timeline{PageSize: 25, Lookahead: 3, Default: "local"},
		Storage:      Storage{DB: DB{DSN: "/tmp/cache.db"}},
		Workers:      Workers{SnapshotInterval: 2 * time.Minute},
		Log:          Log{File: "/tmp/tootline.log"},
		JSONFilePath: "/etc/tootline.json",
	}, cfg)
}

func TestParseEnv_UnsetLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Empty(t, cfg.Instance.URL)
	assert.Zero(t, cfg.Timeline.PageSize)
}

func TestParseEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "INSTANCE_REQUEST_TIMEOUT", val: "soon"},
		{name: "bad int", key: "TIMELINE_LOOKAHEAD", val: "five"},
		{name: "bad interval", key: "WORKERS_SNAPSHOT_INTERVAL", val: "1 minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			var cfg StructuredConfig
			err := parseEnv(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

func TestParseEnv_AccessTokenFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))
	t.Setenv("INSTANCE_ACCESS_TOKEN_FILE", path)

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Equal(t, "from-file", cfg.Instance.AccessToken)

	t.Setenv("INSTANCE_ACCESS_TOKEN", "from-env")
	cfg = StructuredConfig{}
	require.NoError(t, parseEnv(&cfg))
	assert.Equal(t, "from-env", cfg.Instance.AccessToken)
}

func TestParseEnv_MissingTokenFile(t *testing.T) {
	t.Setenv("INSTANCE_ACCESS_TOKEN_FILE", filepath.Join(t.TempDir(), "absent"))

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token file")
}
