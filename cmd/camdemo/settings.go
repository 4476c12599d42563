package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crydev/quatcam/pkg/camera"
)

// Settings holds the tunable parts of the demo. All values have defaults so a
// settings file is optional.
type Settings struct {
	MoveSpeed        float32 `yaml:"move_speed"`        // units per second
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // radians per pixel
	Mode             string  `yaml:"mode"`              // free, first-person, third-person, orbital
	PitchLimitDeg    float32 `yaml:"pitch_limit_deg"`   // pitch clamp, degrees up/down
	TargetDistance   float32 `yaml:"target_distance"`   // third-person/orbital distance
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        10,
		MouseSensitivity: 0.002,
		Mode:             "free",
		PitchLimitDeg:    89,
		TargetDistance:   8,
	}
}

// LoadSettings reads a YAML settings file. Fields missing from the file keep
// their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return settings, nil
}

// CameraMode translates the settings mode name into camera flags and the
// target distance that goes with it.
func (s Settings) CameraMode() (camera.Mode, float32, error) {
	switch s.Mode {
	case "free":
		return camera.ModeFree, 0, nil
	case "first-person":
		return camera.ModeFirstPerson, 0, nil
	case "third-person":
		return camera.ModeThirdPerson, s.TargetDistance, nil
	case "orbital":
		return camera.ModeOrbital, s.TargetDistance, nil
	default:
		return camera.ModeFree, 0, fmt.Errorf("unknown camera mode %q", s.Mode)
	}
}
