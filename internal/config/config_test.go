package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// allConfigKeys lists every FORMFILL_ env var that Load() reads.
var allConfigKeys = []string{
	"FORMFILL_LISTEN_ADDR",
	"FORMFILL_DB_PATH",
	"FORMFILL_FETCH_TIMEOUT",
	"FORMFILL_FETCH_CACHE_ENTRIES",
	"FORMFILL_LOG_LEVEL",
	"FORMFILL_LOG_FORMAT",
	"FORMFILL_PROFILE_PATH",
}

// isolateConfigEnv saves and unsets all FORMFILL_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FORMFILL_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("FORMFILL_DB_PATH", "/tmp/formfill.db")
	t.Setenv("FORMFILL_FETCH_TIMEOUT", "1500ms")
	t.Setenv("FORMFILL_FETCH_CACHE_ENTRIES", "0")
	t.Setenv("FORMFILL_LOG_LEVEL", "debug")
	t.Setenv("FORMFILL_LOG_FORMAT", "JSON")
	t.Setenv("FORMFILL_PROFILE_PATH", "/etc/formfill/profile.yaml")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/formfill.db", cfg.DBPath)
	assert.True(t, cfg.UsesPersistentStore())
	assert.Equal(t, 1500*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, 0, cfg.FetchCacheEntries)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/formfill/profile.yaml", cfg.ProfilePath)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "", cfg.DBPath)
	assert.False(t, cfg.UsesPersistentStore())
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 128, cfg.FetchCacheEntries)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "", cfg.ProfilePath)
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FORMFILL_FETCH_TIMEOUT", "not-a-duration")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORMFILL_FETCH_TIMEOUT")
}

func TestLoad_NonPositiveFetchTimeout(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FORMFILL_FETCH_TIMEOUT", "0s")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestLoad_InvalidFetchCacheEntries(t *testing.T) {
	for _, v := range []string{"lots", "-1"} {
		t.Run(v, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("FORMFILL_FETCH_CACHE_ENTRIES", v)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "FORMFILL_FETCH_CACHE_ENTRIES")
		})
	}
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FORMFILL_LOG_FORMAT", "xml")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORMFILL_LOG_FORMAT")
}

func TestLoadProfile_EmptyPathReturnsDefault(t *testing.T) {
	profile, err := LoadProfile("")

	require.NoError(t, err)
	assert.Equal(t, model.DefaultProfile(), profile)
}

func TestLoadProfile_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := "full_name: Sam Lee\ncard:\n  number: \"5500000000000004\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	profile, err := LoadProfile(path)

	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", profile.FullName)
	assert.Equal(t, "5500000000000004", profile.Card.Number)
	assert.Equal(t, model.DefaultProfile().WorkEmail, profile.WorkEmail)
	assert.Equal(t, model.DefaultProfile().Card.Expiry, profile.Card.Expiry)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadProfile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("full_name: [unterminated"), 0o600))

	_, err := LoadProfile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse profile")
}
