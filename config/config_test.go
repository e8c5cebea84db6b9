package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	m, err := NewManager(path)
	require.NoError(t, err)
	assert.Equal(t, *DefaultConfig(), m.GetConfig())
	assert.Equal(t, path, m.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ambient_tick: true")
}

func TestNewManagerKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sound:\n  muted: true\n  volume: -1.5\nlanguage: pt\nquotes:\n  - Keep going.\n"), 0644))

	m, err := NewManager(path)
	require.NoError(t, err)
	cfg := m.GetConfig()
	assert.True(t, cfg.Sound.Muted)
	assert.Equal(t, -1.5, cfg.Sound.Volume)
	assert.Equal(t, "pt", cfg.Language)
	assert.Equal(t, []string{"Keep going."}, cfg.Quotes)
	assert.Equal(t, 420, cfg.Window.Width)
}

func TestNewManagerRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [oops"), 0644))

	_, err := NewManager(path)
	assert.ErrorContains(t, err, "parse")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "window: [oops", string(data), "a broken file must not be overwritten")
}

func TestGetConfigReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quotes: [a, b]\n"), 0644))
	m, err := NewManager(path)
	require.NoError(t, err)

	cfg := m.GetConfig()
	cfg.Quotes[0] = "changed"
	assert.Equal(t, "a", m.GetConfig().Quotes[0])
}

func TestWatchConfigReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManager(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 8)
	require.NoError(t, m.WatchConfig(ctx, func(c Config) { changes <- c }))

	require.NoError(t, os.WriteFile(path, []byte("sound:\n  muted: true\n"), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Sound.Muted {
				assert.True(t, m.GetConfig().Sound.Muted)
				return
			}
		case <-deadline:
			t.Fatal("no reload after writing the config file")
		}
	}
}
