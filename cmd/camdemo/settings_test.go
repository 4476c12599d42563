package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crydev/quatcam/pkg/camera"
)

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("move_speed: 4.5\nmode: orbital\ntarget_distance: 12\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.InDelta(t, 4.5, settings.MoveSpeed, 1e-6)
	assert.Equal(t, "orbital", settings.Mode)
	assert.InDelta(t, 12, settings.TargetDistance, 1e-6)
	// Fields missing from the file keep their defaults.
	assert.InDelta(t, DefaultSettings().MouseSensitivity, settings.MouseSensitivity, 1e-6)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("move_speed: [oops"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestCameraMode(t *testing.T) {
	tests := []struct {
		mode         string
		wantMode     camera.Mode
		wantDistance float32
	}{
		{"free", camera.ModeFree, 0},
		{"first-person", camera.ModeFirstPerson, 0},
		{"third-person", camera.ModeThirdPerson, 8},
		{"orbital", camera.ModeOrbital, 8},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			settings := DefaultSettings()
			settings.Mode = tt.mode

			mode, distance, err := settings.CameraMode()
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, mode)
			assert.InDelta(t, tt.wantDistance, distance, 1e-6)
		})
	}

	settings := DefaultSettings()
	settings.Mode = "cinematic"
	_, _, err := settings.CameraMode()
	assert.Error(t, err)
}
