// Package terrain generates the sea floor: a multi-octave Perlin height field
// wrapped as an implicit surface for submerged raymarching, with a sand albedo
// that darkens in the deeper basins.
package terrain

import (
	perlin "github.com/aquilax/go-perlin"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/shade"
	"github.com/wavecrest/go-ocean-render/pkg/tracer"
)

// Config controls the shape of the sea floor
type Config struct {
	FloorDepth float64 `json:"floorDepth"` // Mean depth below the still waterline
	Amplitude  float64 `json:"amplitude"`  // Height swing of the dunes
	Scale      float64 `json:"scale"`      // Horizontal frequency of the dunes
	Octaves    int     `json:"octaves"`
	Seed       int64   `json:"seed"`
}

// DefaultConfig returns a gently duned floor about eight units down
func DefaultConfig() Config {
	return Config{
		FloorDepth: 8,
		Amplitude:  2.5,
		Scale:      0.04,
		Octaves:    4,
		Seed:       1,
	}
}

// Terrain implements the seabed seen by the transmission model
type Terrain struct {
	cfg   Config
	noise *perlin.Perlin
}

var _ shade.Floor = (*Terrain)(nil)

// New creates a terrain from the given configuration. The seed fixes the dune
// pattern; the same config always yields the same floor.
func New(cfg Config) *Terrain {
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}
	return &Terrain{
		cfg:   cfg,
		noise: perlin.NewPerlin(2, 2, int32(cfg.Octaves), cfg.Seed),
	}
}

// Height returns the floor elevation at horizontal position p, measured on
// the world Y axis. Always below the waterline for sane configs.
func (tr *Terrain) Height(p core.Vec2) float64 {
	n := tr.noise.Noise2D(p.X*tr.cfg.Scale, p.Y*tr.cfg.Scale)
	return -tr.cfg.FloorDepth + tr.cfg.Amplitude*n
}

// Depth returns the still-water column depth at p, never negative
func (tr *Terrain) Depth(p core.Vec2) float64 {
	d := -tr.Height(p)
	if d < 0 {
		return 0
	}
	return d
}

// DistanceFunc wraps the height field as an implicit surface for the tracer.
// The floor is static; time is accepted and ignored.
func (tr *Terrain) DistanceFunc() tracer.DistanceFunc {
	return func(p core.Vec3, t float64) float64 {
		return p.Y - tr.Height(p.XZ())
	}
}

// Albedo returns the sand color at the floor point, darkening toward the
// deeper basins so dune crests read brighter through the water
func (tr *Terrain) Albedo(p core.Vec3) core.Vec3 {
	sand := core.NewVec3(0.76, 0.7, 0.5)
	dark := core.NewVec3(0.35, 0.33, 0.26)

	if tr.cfg.Amplitude <= 0 {
		return sand
	}
	relief := core.Clamp01((tr.Height(p.XZ()) + tr.cfg.FloorDepth + tr.cfg.Amplitude) / (2 * tr.cfg.Amplitude))
	return dark.Lerp(sand, relief)
}
