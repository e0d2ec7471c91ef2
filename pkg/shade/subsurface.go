package shade

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// Subsurface approximates light scattered forward through the water toward
// the viewer: a single-scatter term with full absorption plus a
// multiple-scatter term with half-strength absorption and a shallow-depth
// boost that reproduces the glow of backlit shallow water.
type Subsurface struct {
	Asymmetry float64 // Henyey-Greenstein g, strongly forward for water
	Strength  float64
}

// NewSubsurface returns the default forward-scattering configuration
func NewSubsurface() *Subsurface {
	return &Subsurface{
		Asymmetry: 0.9,
		Strength:  0.35,
	}
}

// HenyeyGreenstein evaluates the phase function for the given scattering
// cosine. The denominator is epsilon-guarded at the g→1, cosTheta→1 pole.
func HenyeyGreenstein(cosTheta, g float64) float64 {
	g2 := g * g
	denom := 1 + g2 - 2*g*core.Clamp(cosTheta, -1, 1)
	if denom < 1e-6 {
		denom = 1e-6
	}
	return (1 - g2) / (4 * math.Pi * denom * math.Sqrt(denom))
}

// Scatter returns the additive subsurface contribution for a viewer looking
// along view with sunlight arriving from sunDirection, through water of the
// given depth and tint.
func (s *Subsurface) Scatter(view, sunDirection core.Vec3, absorption, tint core.Vec3, depth float64, sunLight core.Vec3) core.Vec3 {
	// Forward scattering peaks when the view runs with the light
	phase := HenyeyGreenstein(view.Dot(sunDirection.Negate()), s.Asymmetry)

	single := Transmittance(absorption, depth).Multiply(phase)

	// Multiple scattering survives deeper and glows near the surface
	boost := 1 - core.Smoothstep(0, 10, depth)
	multiple := Transmittance(absorption.Multiply(0.5), depth).Multiply(phase * boost)

	return tint.MultiplyVec(sunLight).MultiplyVec(single.Add(multiple)).Multiply(s.Strength)
}
