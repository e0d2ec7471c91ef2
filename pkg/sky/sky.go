// Package sky supplies everything above the ocean surface: per-instant sun
// and moon lighting plus a directional background color with a day cycle,
// clouds and stars. Every query is a pure function of (direction, time,
// config).
package sky

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/shade"
)

// Config controls the sun path and the look of the sky dome
type Config struct {
	SunLongitude float64 `json:"sunLongitude"` // Degrees around Y at t = 0
	SunLatitude  float64 `json:"sunLatitude"`  // Peak elevation in degrees
	DayLength    float64 `json:"dayLength"`    // Seconds per full cycle; 0 freezes the sun
	CloudCover   float64 `json:"cloudCover"`   // 0 clear to 1 overcast
	CloudScale   float64 `json:"cloudScale"`   // Spatial frequency of the cloud layer
	Seed         int64   `json:"seed"`
}

// DefaultConfig returns a mid-morning sky with scattered clouds
func DefaultConfig() Config {
	return Config{
		SunLongitude: 40,
		SunLatitude:  55,
		DayLength:    0,
		CloudCover:   0.35,
		CloudScale:   2.2,
		Seed:         7,
	}
}

// Sky implements the environment seen by the shading pipeline
type Sky struct {
	cfg    Config
	clouds opensimplex.Noise
}

var _ shade.Environment = (*Sky)(nil)

// New creates a sky from the given configuration. The seed fixes the cloud
// pattern; the same config always renders the same sky.
func New(cfg Config) *Sky {
	return &Sky{
		cfg:    cfg,
		clouds: opensimplex.New(cfg.Seed),
	}
}

// sunVector converts longitude/latitude angles to a unit direction.
// Longitude rotates around Y, latitude is elevation from the horizon.
func sunVector(lonDeg, latDeg float64) core.Vec3 {
	lon := lonDeg * math.Pi / 180
	lat := latDeg * math.Pi / 180
	return core.NewVec3(
		math.Cos(lat)*math.Sin(lon),
		math.Sin(lat),
		math.Cos(lat)*math.Cos(lon),
	)
}

// sunAngles advances the configured sun position along the day cycle
func (s *Sky) sunAngles(t float64) (lon, lat float64) {
	lon = s.cfg.SunLongitude
	lat = s.cfg.SunLatitude
	if s.cfg.DayLength > 0 {
		phase := 2 * math.Pi * t / s.cfg.DayLength
		lon += phase * 180 / math.Pi
		lat = s.cfg.SunLatitude * math.Cos(phase)
	}
	return lon, lat
}

// SunDirection returns the unit vector toward the sun at time t
func (s *Sky) SunDirection(t float64) core.Vec3 {
	return sunVector(s.sunAngles(t))
}

// EvaluateLighting returns the lighting state at time t. Sun intensity fades
// through the horizon band, the sun color warms toward the horizon, and the
// moon takes over the opposite half of the dome at night.
func (s *Sky) EvaluateLighting(t float64) shade.LightingInfo {
	sun := s.SunDirection(t)
	daylight := core.Smoothstep(-0.12, 0.15, sun.Y)

	horizonFactor := 1 - core.Clamp01(sun.Y/0.5)
	sunColor := core.NewVec3(1, 0.98, 0.94).Lerp(core.NewVec3(1, 0.55, 0.3), horizonFactor)

	moon := sun.Negate()
	moonlight := 0.15 * core.Smoothstep(-0.12, 0.1, moon.Y) * (1 - daylight)

	ambient := core.NewVec3(0.02, 0.03, 0.06).Lerp(core.NewVec3(0.25, 0.3, 0.38), daylight)

	return shade.LightingInfo{
		SunDirection:  sun,
		SunColor:      sunColor,
		SunIntensity:  1.4 * daylight,
		MoonDirection: moon,
		MoonColor:     core.NewVec3(0.6, 0.7, 0.9),
		MoonIntensity: moonlight,
		Ambient:       ambient,
	}
}

// Color returns the sky color along the given direction at time t
func (s *Sky) Color(direction core.Vec3, t float64) core.Vec3 {
	dir := direction.Normalize()
	sun := s.SunDirection(t)

	color := s.gradient(dir, sun.Y)
	color = s.cloudLayer(color, dir, sun.Y, t)
	color = color.Add(s.celestial(dir, sun, t))

	return color
}

// gradient blends the day, dusk and night vertical ramps by sun elevation
func (s *Sky) gradient(dir core.Vec3, elevation float64) core.Vec3 {
	duskWeight := core.Smoothstep(-0.25, -0.02, elevation)
	dayWeight := core.Smoothstep(0.0, 0.25, elevation)

	zenith := core.NewVec3(0.01, 0.015, 0.04).
		Lerp(core.NewVec3(0.22, 0.18, 0.35), duskWeight).
		Lerp(core.NewVec3(0.18, 0.38, 0.75), dayWeight)
	horizon := core.NewVec3(0.03, 0.04, 0.08).
		Lerp(core.NewVec3(0.95, 0.45, 0.25), duskWeight).
		Lerp(core.NewVec3(0.6, 0.72, 0.85), dayWeight)

	up := math.Pow(core.Clamp01(dir.Y), 0.65)
	return horizon.Lerp(zenith, up)
}

// cloudLayer overlays simplex clouds on the upper hemisphere. The dome is
// projected onto a plane so clouds flatten toward the horizon, and the layer
// drifts slowly with time.
func (s *Sky) cloudLayer(base core.Vec3, dir core.Vec3, elevation, t float64) core.Vec3 {
	if dir.Y <= 0.02 || s.cfg.CloudCover <= 0 {
		return base
	}

	scale := s.cfg.CloudScale
	px := dir.X / (dir.Y + 0.15) * scale
	pz := dir.Z / (dir.Y + 0.15) * scale
	n := 0.5 + 0.5*s.clouds.Eval3(px, pz, t*0.01)

	lo := 0.75 - 0.5*s.cfg.CloudCover
	density := core.Smoothstep(lo, lo+0.25, n)

	daylight := core.Smoothstep(-0.05, 0.2, elevation)
	lit := core.NewVec3(0.9, 0.9, 0.92).Multiply(0.15 + 0.85*daylight)

	fade := core.Clamp01(dir.Y * 3)
	return base.Lerp(lit, density*fade)
}

// celestial adds the sun disc and glow, the moon disc, and night stars
func (s *Sky) celestial(dir, sun core.Vec3, t float64) core.Vec3 {
	var add core.Vec3

	daylight := core.Smoothstep(-0.12, 0.1, sun.Y)
	cosSun := core.Clamp01(dir.Dot(sun))

	disc := core.Smoothstep(0.9985, 0.9997, cosSun)
	glow := math.Pow(cosSun, 64) * 0.5
	add = add.Add(core.NewVec3(1, 0.92, 0.8).Multiply((20*disc + glow) * daylight))

	moon := sun.Negate()
	night := 1 - daylight
	if night > 0 {
		cosMoon := core.Clamp01(dir.Dot(moon))
		moonDisc := core.Smoothstep(0.9992, 0.9998, cosMoon)
		add = add.Add(core.NewVec3(0.6, 0.7, 0.9).Multiply(2 * moonDisc * night))
		add = add.Add(s.stars(dir).Multiply(night))
	}

	return add
}

// stars hashes a quantized direction into a sparse fixed star field
func (s *Sky) stars(dir core.Vec3) core.Vec3 {
	if dir.Y <= 0 {
		return core.Vec3{}
	}
	cx := math.Floor(dir.X * 300)
	cy := math.Floor(dir.Y * 300)
	cz := math.Floor(dir.Z * 300)

	h := core.Hash11(cx*12.9898 + cy*78.233 + cz*37.719)
	if h < 0.9985 {
		return core.Vec3{}
	}
	brightness := (h - 0.9985) / 0.0015
	return core.NewVec3(0.8, 0.85, 1).Multiply(brightness)
}
