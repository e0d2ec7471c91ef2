// Package material holds the optical configuration of the water body and the
// reflectance building blocks: Schlick Fresnel and a multi-scatter
// compensated GGX microfacet specular.
package material

import (
	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// Water is the read-only optical configuration of the ocean. Plain data with
// no behavior beyond derived constants; callers treat it as immutable.
// Validation is a caller precondition, not enforced here.
type Water struct {
	Absorption    core.Vec3 `json:"absorption"`     // Beer-Lambert coefficients per channel
	DeepColor     core.Vec3 `json:"deep_color"`     // Tint endpoint for deep water
	ShallowColor  core.Vec3 `json:"shallow_color"`  // Tint endpoint for shallow water
	BaseRoughness float64   `json:"base_roughness"` // Lower bound for dynamic roughness
	MaxRoughness  float64   `json:"max_roughness"`  // Upper bound for dynamic roughness
	IOR           float64   `json:"ior"`            // Refractive index, ~1.333 for water
}

// DefaultWater returns open-ocean defaults. Red absorbs fastest, which is
// what gives deep water its blue cast.
func DefaultWater() Water {
	return Water{
		Absorption:    core.NewVec3(0.15, 0.045, 0.015),
		DeepColor:     core.NewVec3(0.015, 0.065, 0.12),
		ShallowColor:  core.NewVec3(0.1, 0.34, 0.38),
		BaseRoughness: 0.02,
		MaxRoughness:  0.25,
		IOR:           1.333,
	}
}

// F0 returns the per-channel normal-incidence reflectance derived from the
// refractive index, with a small fixed dispersion spread (blue refracts
// slightly stronger than red).
func (w Water) F0() core.Vec3 {
	base := F0FromIOR(w.IOR)
	return core.NewVec3(base*0.96, base, base*1.04)
}

// Eta returns the air-to-water refraction ratio
func (w Water) Eta() float64 {
	if w.IOR == 0 {
		return 1
	}
	return 1.0 / w.IOR
}

// RoughnessFromSlope derives the local GGX roughness from the wave slope
// magnitude: steeper, crestier water scatters specular more diffusely. The
// result is clamped to the material's [base, max] band.
func (w Water) RoughnessFromSlope(slopeMagnitude, steepness float64) float64 {
	alpha := w.BaseRoughness + slopeMagnitude*steepness*0.6
	return core.Clamp(alpha, w.BaseRoughness, w.MaxRoughness)
}
