// Package config provides configuration loading and management.
package config

import (
	"os"

	"github.com/user/trailclean/pkg/orchestrator"
	"github.com/user/trailclean/pkg/patch"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for trailclean.
type Config struct {
	// Input/Output
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`

	// Patch geometry. X is measured from the left edge, Y from the
	// bottom edge of the frame.
	PatchWidth   int `yaml:"patch_width"`
	PatchHeight  int `yaml:"patch_height"`
	PatchX       int `yaml:"patch_x"`
	PatchY       int `yaml:"patch_y"`
	MirrorHeight int `yaml:"mirror_height"`
	MirrorOffset int `yaml:"mirror_offset"`

	// Processing
	Workers  int    `yaml:"workers"`
	TempDir  string `yaml:"tmpdir"`
	KeepTemp bool   `yaml:"keep_temp"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values. The geometry defaults
// match the stamp placement common on trail camera footage.
func Defaults() Config {
	g := patch.Default()
	return Config{
		PatchWidth:   g.Width,
		PatchHeight:  g.Height,
		PatchX:       g.X,
		PatchY:       g.Y,
		MirrorHeight: g.MirrorHeight,
		MirrorOffset: g.MirrorOffset,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Geometry returns the patch geometry described by the config.
func (c Config) Geometry() patch.Geometry {
	return patch.Geometry{
		Width:        c.PatchWidth,
		Height:       c.PatchHeight,
		X:            c.PatchX,
		Y:            c.PatchY,
		MirrorHeight: c.MirrorHeight,
		MirrorOffset: c.MirrorOffset,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		InputPath:  c.InputPath,
		OutputPath: c.OutputPath,
		TempDir:    c.TempDir,
		KeepTemp:   c.KeepTemp,
		Geometry:   c.Geometry(),
		Workers:    c.Workers,
	}
}
