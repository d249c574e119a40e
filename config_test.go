package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_MissingDefaultFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	config, err := LoadConfig(path, false, ConfigOverrides{})
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, "firefox", config.Target.ProcessName)
	assert.Equal(t, 200*time.Millisecond, config.Redirect.Delay)
	assert.True(t, config.Redirect.Enabled)
	assert.True(t, config.Chords.Enabled)
	assert.True(t, config.Tray.Enabled)
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := LoadConfig(path, true, ConfigOverrides{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
target:
  process_name: spotify
redirect:
  delay: 350ms
  resolve_timeout: 20ms
chords:
  enabled: false
logging:
  dir: custom-logs
  debug: true
`)

	config, err := LoadConfig(path, true, ConfigOverrides{})
	require.NoError(t, err)

	assert.Equal(t, "spotify", config.Target.ProcessName)
	assert.Equal(t, 350*time.Millisecond, config.Redirect.Delay)
	assert.Equal(t, 20*time.Millisecond, config.Redirect.ResolveTimeout)
	assert.True(t, config.Redirect.Enabled, "unset keys keep their defaults")
	assert.False(t, config.Chords.Enabled)
	assert.Equal(t, "custom-logs", config.Logging.Dir)
	assert.True(t, config.Logging.Debug)
}

func TestLoadConfig_OverridesWin(t *testing.T) {
	path := writeConfig(t, `
target:
  process_name: spotify
redirect:
  delay: 350ms
`)
	target := "vlc"
	delay := 50 * time.Millisecond

	config, err := LoadConfig(path, true, ConfigOverrides{
		TargetProcess: &target,
		Delay:         &delay,
		NoRedirect:    true,
		NoChords:      true,
		NoTray:        true,
		Debug:         true,
	})
	require.NoError(t, err)

	assert.Equal(t, "vlc", config.Target.ProcessName)
	assert.Equal(t, 50*time.Millisecond, config.Redirect.Delay)
	assert.False(t, config.Redirect.Enabled)
	assert.False(t, config.Chords.Enabled)
	assert.False(t, config.Tray.Enabled)
	assert.True(t, config.Logging.Debug)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "target: [unclosed"},
		{"empty target with redirect", "target:\n  process_name: \"  \"\n"},
		{"negative delay", "redirect:\n  delay: -1s\n"},
		{"zero resolve timeout", "redirect:\n  resolve_timeout: 0s\n"},
		{"empty log dir", "logging:\n  dir: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), true, ConfigOverrides{})
			assert.Error(t, err)
		})
	}
}

func TestValidateConfig_EmptyTargetAllowedWithoutRedirect(t *testing.T) {
	config := DefaultConfig()
	config.Target.ProcessName = ""
	config.Redirect.Enabled = false

	assert.NoError(t, validateConfig(config))
}
