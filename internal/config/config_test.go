package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "gcalcli", cfg.Command)
		assert.Equal(t, "--", cfg.Fallback)
		assert.Equal(t, "#FF0000", cfg.Color)
		assert.Equal(t, "", cfg.Timezone)
		assert.False(t, cfg.Diagnostics)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "command: \"khal list --notstarted\"\ntimezone: \"Europe/Warsaw\"\nfallback: \"no events\"\ndiagnostics: true\ncolor: \"#FFBF00\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "khal list --notstarted", cfg.Command)
		assert.Equal(t, "Europe/Warsaw", cfg.Timezone)
		assert.Equal(t, "no events", cfg.Fallback)
		assert.True(t, cfg.Diagnostics)
		assert.Equal(t, "#FFBF00", cfg.Color)
	})

	t.Run("environment overrides file and defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("command: \"khal\"\n"), 0o600))
		t.Setenv("BARCAL_COMMAND", "gcalcli --nocolor")
		t.Setenv("BARCAL_FALLBACK", "...")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "gcalcli --nocolor", cfg.Command)
		assert.Equal(t, "...", cfg.Fallback)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("command: [unclosed\n"), 0o600))

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestDefaultPath(t *testing.T) {

	t.Run("BARCAL_CONFIG wins", func(t *testing.T) {
		t.Setenv("BARCAL_CONFIG", "/tmp/barcal.yaml")
		assert.Equal(t, "/tmp/barcal.yaml", DefaultPath())
	})

	t.Run("defaults to the user config directory", func(t *testing.T) {
		t.Setenv("BARCAL_CONFIG", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "barcal", "config.yaml"), DefaultPath())
	})
}
