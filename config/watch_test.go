package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replaceFile swaps path's content in one rename so the watcher never sees
// a half-written file.
func replaceFile(t *testing.T, path, body string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(body), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatchReloadsBackendURL(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "deskclient.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  url: http://first:5000\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.Equal(t, "http://first:5000", cfg.Backend.URL)

	changes := make(chan string, 16)
	failures := make(chan error, 16)
	Watch(func(c *Config) {
		select {
		case changes <- c.Backend.URL:
		default:
		}
	}, func(err error) {
		select {
		case failures <- err:
		default:
		}
	})

	replaceFile(t, path, "backend:\n  url: http://second:5000/\n")
	deadline := time.After(5 * time.Second)
	for got := ""; got != "http://second:5000"; {
		select {
		case got = <-changes:
		case <-deadline:
			t.Fatalf("no reload with the new backend.url, last seen %q", got)
		}
	}

	replaceFile(t, path, "backend:\n  url: ftp://third\n")
	select {
	case err := <-failures:
		assert.ErrorContains(t, err, "backend.url")
	case <-time.After(5 * time.Second):
		t.Fatal("invalid backend.url was not reported")
	}
}

func TestWatchWithoutConfigFileIsNoop(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		Watch(func(*Config) { t.Error("unexpected reload") }, nil)
	})
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	// Register cleanup for the variable .env will set, then make sure it
	// starts out unset so godotenv does not skip it.
	t.Setenv("DESKCLIENT_BACKEND_URL", "")
	require.NoError(t, os.Unsetenv("DESKCLIENT_BACKEND_URL"))
	t.Setenv("DESKCLIENT_RECORDING_ROLLBACK_ON_FAILURE", "")
	require.NoError(t, os.Unsetenv("DESKCLIENT_RECORDING_ROLLBACK_ON_FAILURE"))

	require.NoError(t, os.WriteFile(".env",
		[]byte("DESKCLIENT_BACKEND_URL=http://from-dotenv:5000\nDESKCLIENT_RECORDING_ROLLBACK_ON_FAILURE=true\n"), 0o644))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:5000", cfg.Backend.URL)
	assert.True(t, cfg.Recording.RollbackOnFailure)
}

func TestLoadConfigEnvironmentBeatsDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DESKCLIENT_BACKEND_URL", "http://from-env:5000")
	require.NoError(t, os.WriteFile(".env", []byte("DESKCLIENT_BACKEND_URL=http://from-dotenv:5000\n"), 0o644))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:5000", cfg.Backend.URL)
}
