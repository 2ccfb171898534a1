package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
)

// TestValidate checks required fields, format validations and defaults.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Missing address.
	settings := new(Config)
	require.Error(t, Validate(settings))

	// Bad address.
	settings = &Config{
		ListenAddress: "bad:address",
	}
	require.Error(t, Validate(settings))

	// Bad log level.
	settings = &Config{
		ListenAddress: "127.0.0.1:0",
		LogLevel:      "chatty",
	}
	require.Error(t, Validate(settings))

	// Unknown sound override.
	settings = &Config{
		ListenAddress: "127.0.0.1:0",
		Sounds:        map[alarm.Sound]string{"kazoo": "kazoo.wav"},
	}
	require.Error(t, Validate(settings))

	// Defaults filled.
	settings = &Config{
		ListenAddress: "127.0.0.1:0",
		Sounds:        map[alarm.Sound]string{alarm.SoundChime: "chime.wav"},
	}
	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultTickInterval, settings.TickInterval)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ListenAddress: "127.0.0.1:50061",
		Timeout:       2 * time.Second,
		TickInterval:  500 * time.Millisecond,
		LogLevel:      "debug",
		Mute:          true,
		Sounds:        map[alarm.Sound]string{alarm.SoundSiren: "/opt/sounds/siren.wav"},
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.Error(t, Save(path, nil))
}

// TestLoadYAMLDurations parses human-friendly durations from a hand-written file.
func TestLoadYAMLDurations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "listen_addr: 127.0.0.1:6000\ntimeout: 3s\ntick_interval: 250ms\nsounds:\n  classic: ring.wav\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	require.Equal(t, "ring.wav", cfg.Sounds[alarm.SoundClassic])
	require.False(t, cfg.Mute)
}

// TestLoadOrDefault falls back to defaults only for a missing file.
func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [nope"), DefaultFilePermissions))

	_, err = LoadOrDefault(path)
	require.Error(t, err)
}
