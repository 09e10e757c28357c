// Package config loads and watches the movement tuning file. The file is
// optional everywhere: callers start from Default and overlay whatever the
// file provides, so a partial file only overrides the keys it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/firstperson/controller"
)

// Tuning bundles every numeric knob the controller takes.
type Tuning struct {
	Locomotion controller.LocomotionParams `yaml:"locomotion"`
	Jump       controller.JumpTuning       `yaml:"jump"`
}

func Default() Tuning {
	return Tuning{
		Locomotion: controller.DefaultLocomotionParams(),
		Jump:       controller.DefaultJumpTuning(),
	}
}

func (t Tuning) Validate() error {
	if err := t.Locomotion.Validate(); err != nil {
		return err
	}
	return t.Jump.Validate()
}

// Load reads a tuning file over the defaults and validates the result.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals tuning yaml over the defaults and validates the result.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("config: %w", err)
	}
	return t, nil
}

// Save writes the tuning file, e.g. to seed a playtest session with the
// defaults before hand-editing.
func Save(path string, t Tuning) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("config: marshal tuning: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
