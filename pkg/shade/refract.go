// Package shade implements the water shading pipeline: Fresnel-weighted
// reflection/refraction, Beer-Lambert transmission through the water column,
// a stochastic caustics estimator and a Henyey-Greenstein subsurface term.
// Every function is a pure function of (position, time, configuration);
// degenerate geometry is clamped or falls back locally, never raised.
package shade

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// Reflect returns the mirror reflection of v about the normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the incident direction through a surface with the given
// normal and refraction ratio eta (n_incident / n_transmitted). On total
// internal reflection it returns the mirror reflection instead, so the
// result is always a well-defined unit direction.
func Refract(incident, normal core.Vec3, eta float64) core.Vec3 {
	cosI := core.Clamp(-incident.Dot(normal), -1, 1)
	sinT2 := eta * eta * (1 - cosI*cosI)
	if sinT2 > 1 {
		return Reflect(incident, normal)
	}
	cosT := math.Sqrt(1 - sinT2)
	return incident.Multiply(eta).Add(normal.Multiply(eta*cosI - cosT))
}

// Transmittance returns the Beer-Lambert attenuation exp(−absorption·depth)
// per channel.
func Transmittance(absorption core.Vec3, depth float64) core.Vec3 {
	return absorption.Multiply(-depth).Exp()
}

// Absorb attenuates a color over a path length through the water
func Absorb(color, absorption core.Vec3, pathLength float64) core.Vec3 {
	return color.MultiplyVec(Transmittance(absorption, pathLength))
}
