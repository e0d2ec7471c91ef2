package shade

import (
	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/tracer"
)

// LightingInfo is the lighting oracle's answer for one instant. SunDirection
// and MoonDirection point from the surface toward the light.
type LightingInfo struct {
	SunDirection  core.Vec3
	SunColor      core.Vec3
	SunIntensity  float64
	MoonDirection core.Vec3
	MoonColor     core.Vec3
	MoonIntensity float64
	Ambient       core.Vec3
}

// Environment supplies everything above the surface: per-instant lighting and
// a directional background color. The pipeline never computes sun position or
// atmospheric scattering itself.
type Environment interface {
	EvaluateLighting(t float64) LightingInfo
	Color(direction core.Vec3, t float64) core.Vec3
}

// Floor supplies the seabed below the surface: an implicit field for
// submerged raymarching, its albedo, and the still-water depth at a
// horizontal position. The pipeline never generates terrain itself.
type Floor interface {
	DistanceFunc() tracer.DistanceFunc
	Albedo(p core.Vec3) core.Vec3
	Depth(p core.Vec2) float64
}
