package scene

import (
	"fmt"
	"sort"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/material"
	"github.com/wavecrest/go-ocean-render/pkg/renderer"
	"github.com/wavecrest/go-ocean-render/pkg/shade"
	"github.com/wavecrest/go-ocean-render/pkg/sky"
	"github.com/wavecrest/go-ocean-render/pkg/terrain"
)

// CalmDawn is glassy water under a low red sun
func CalmDawn() Config {
	water := material.DefaultWater()
	water.BaseRoughness = 0.01
	water.MaxRoughness = 0.12

	skyCfg := sky.DefaultConfig()
	skyCfg.SunLongitude = 95
	skyCfg.SunLatitude = 7
	skyCfg.CloudCover = 0.15

	return Config{
		Name:    "calm-dawn",
		Wave:    WaveConfig{Components: 5, BaseAmplitude: 0.08, BaseWavenumber: 0.5, TimeScale: 0.25, DetailSeed: 11},
		Water:   water,
		Sky:     skyCfg,
		Terrain: terrain.DefaultConfig(),
		Camera:  renderer.DefaultCameraConfig(),
		Shading: shade.DefaultOptions(),
	}
}

// SunnyDay is moderate chop under a high sun with scattered clouds
func SunnyDay() Config {
	skyCfg := sky.DefaultConfig()
	skyCfg.SunLongitude = 40
	skyCfg.SunLatitude = 62
	skyCfg.CloudCover = 0.35

	return Config{
		Name:    "sunny-day",
		Wave:    WaveConfig{Components: 6, BaseAmplitude: 0.35, BaseWavenumber: 0.6, TimeScale: 0.4, DetailSeed: 42},
		Water:   material.DefaultWater(),
		Sky:     skyCfg,
		Terrain: terrain.DefaultConfig(),
		Camera:  renderer.DefaultCameraConfig(),
		Shading: shade.DefaultOptions(),
	}
}

// Sunset is long swell with warm grazing light
func Sunset() Config {
	water := material.DefaultWater()
	water.ShallowColor = core.NewVec3(0.16, 0.3, 0.3)

	skyCfg := sky.DefaultConfig()
	skyCfg.SunLongitude = 265
	skyCfg.SunLatitude = 4
	skyCfg.CloudCover = 0.45

	camera := renderer.DefaultCameraConfig()
	camera.Exposure = 1.25

	return Config{
		Name:    "sunset",
		Wave:    WaveConfig{Components: 6, BaseAmplitude: 0.25, BaseWavenumber: 0.4, TimeScale: 0.3, DetailSeed: 7},
		Water:   water,
		Sky:     skyCfg,
		Terrain: terrain.DefaultConfig(),
		Camera:  camera,
		Shading: shade.DefaultOptions(),
	}
}

// NightStorm is heavy seas under a moonlit overcast sky
func NightStorm() Config {
	water := material.DefaultWater()
	water.BaseRoughness = 0.06
	water.MaxRoughness = 0.4
	water.Absorption = core.NewVec3(0.2, 0.08, 0.04)

	skyCfg := sky.DefaultConfig()
	skyCfg.SunLongitude = 180
	skyCfg.SunLatitude = -35
	skyCfg.CloudCover = 0.85
	skyCfg.Seed = 13

	terrainCfg := terrain.DefaultConfig()
	terrainCfg.FloorDepth = 20

	camera := renderer.DefaultCameraConfig()
	camera.Position = core.NewVec3(0, 5, 14)
	camera.Exposure = 1.6

	return Config{
		Name:    "night-storm",
		Wave:    WaveConfig{Components: 8, BaseAmplitude: 0.7, BaseWavenumber: 0.35, TimeScale: 0.55, DetailSeed: 13},
		Water:   water,
		Sky:     skyCfg,
		Terrain: terrainCfg,
		Camera:  camera,
		Shading: shade.DefaultOptions(),
	}
}

// presets maps scene names to their constructors
var presets = map[string]func() Config{
	"calm-dawn":   CalmDawn,
	"sunny-day":   SunnyDay,
	"sunset":      Sunset,
	"night-storm": NightStorm,
}

// Names returns the preset scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the preset with the given name
func ByName(name string) (Config, error) {
	construct, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown scene %q, available: %v", name, Names())
	}
	return construct(), nil
}
