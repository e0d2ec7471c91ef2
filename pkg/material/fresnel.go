package material

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// F0FromIOR returns the normal-incidence reflectance of a dielectric with the
// given refractive index against air.
func F0FromIOR(ior float64) float64 {
	r0 := (ior - 1) / (ior + 1)
	return r0 * r0
}

// Schlick computes the Fresnel reflectance F0 + (1−F0)(1−cosθ)^5 per channel.
// cosTheta is clamped to [0,1] before the pow, and the result never drops
// below F0 nor exceeds 1.
func Schlick(cosTheta float64, f0 core.Vec3) core.Vec3 {
	c := core.Clamp01(cosTheta)
	w := math.Pow(1-c, 5)
	return core.Vec3{
		X: core.Clamp(f0.X+(1-f0.X)*w, f0.X, 1),
		Y: core.Clamp(f0.Y+(1-f0.Y)*w, f0.Y, 1),
		Z: core.Clamp(f0.Z+(1-f0.Z)*w, f0.Z, 1),
	}
}
