// Package scene bundles wave, water, sky, terrain and camera configuration
// into named presets and builds the shading pipeline from them. Configs
// round-trip through JSON so a preset can be saved, edited and reloaded.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wavecrest/go-ocean-render/pkg/material"
	"github.com/wavecrest/go-ocean-render/pkg/renderer"
	"github.com/wavecrest/go-ocean-render/pkg/shade"
	"github.com/wavecrest/go-ocean-render/pkg/sky"
	"github.com/wavecrest/go-ocean-render/pkg/terrain"
	"github.com/wavecrest/go-ocean-render/pkg/wave"
)

// WaveConfig parameterizes the spectrum and the normal detail layer
type WaveConfig struct {
	Components     int     `json:"components"`
	BaseAmplitude  float64 `json:"baseAmplitude"`
	BaseWavenumber float64 `json:"baseWavenumber"`
	TimeScale      float64 `json:"timeScale"`
	DetailSeed     int64   `json:"detailSeed"`
}

// Config is a complete renderable scene description
type Config struct {
	Name    string                `json:"name"`
	Wave    WaveConfig            `json:"wave"`
	Water   material.Water        `json:"water"`
	Sky     sky.Config            `json:"sky"`
	Terrain terrain.Config        `json:"terrain"`
	Camera  renderer.CameraConfig `json:"camera"`
	Shading shade.Options         `json:"shading"`
}

// Build wires the scene into a ready-to-shade pipeline
func (c Config) Build() *shade.Pipeline {
	spectrum := wave.NewSpectrum(c.Wave.Components, c.Wave.BaseAmplitude, c.Wave.BaseWavenumber, c.Wave.TimeScale)
	field := wave.NewField(spectrum)
	normals := wave.NewNormalEstimator(field, c.Wave.DetailSeed)

	return shade.NewPipeline(field, normals, c.Water, sky.New(c.Sky), terrain.New(c.Terrain), c.Shading)
}

// Save writes the scene config as indented JSON
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene %q: %w", c.Name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

// Load reads a scene config from a JSON file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read scene file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	return cfg, nil
}
