package material

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// epsilon guards the BRDF denominators against division by zero at grazing
// angles.
const epsilon = 1e-6

// DistributionGGX is the GGX/Trowbridge-Reitz normal distribution
func DistributionGGX(ndoth, alpha float64) float64 {
	a2 := alpha * alpha
	d := ndoth*ndoth*(a2-1) + 1
	return a2 / (math.Pi*d*d + epsilon)
}

// SmithG1 is the Smith masking term for one direction
func SmithG1(ndotx, alpha float64) float64 {
	a2 := alpha * alpha
	return 2 * ndotx / (ndotx + math.Sqrt(a2+(1-a2)*ndotx*ndotx) + epsilon)
}

// MultiScatterCompensation returns Fms = (1−Eavg)/(1−Eavg·(1−α²)), the
// energy-compensation weight for light lost to single-scatter shadowing.
// Eavg uses a one-term quartic fit so the compensation vanishes at the
// mirror limit and restores roughly 20% at full roughness; without it,
// rough water renders unphysically dark.
func MultiScatterCompensation(alpha float64) float64 {
	a2 := alpha * alpha
	eavg := 1 - 0.2*a2*a2
	denom := 1 - eavg*(1-a2)
	if denom < epsilon {
		denom = epsilon
	}
	return (1 - eavg) / denom
}

// SpecularGGX evaluates the microfacet specular term for the given geometry.
// Returns exactly zero when either the light or the view falls below the
// surface; no back-face leakage. With multiScatter set, the Fresnel term is
// lifted to F' = F + Fms·(1−F).
func SpecularGGX(normal, view, light core.Vec3, alpha float64, f0 core.Vec3, multiScatter bool) core.Vec3 {
	ndotv := normal.Dot(view)
	ndotl := normal.Dot(light)
	if ndotl <= 0 || ndotv <= 0 {
		return core.Vec3{}
	}

	half := view.Add(light).Normalize()
	ndoth := core.Clamp01(normal.Dot(half))
	vdoth := core.Clamp01(view.Dot(half))

	d := DistributionGGX(ndoth, alpha)
	g := SmithG1(ndotv, alpha) * SmithG1(ndotl, alpha)
	fresnel := Schlick(vdoth, f0)

	if multiScatter {
		fms := MultiScatterCompensation(alpha)
		fresnel = fresnel.Add(core.NewVec3(1, 1, 1).Subtract(fresnel).Multiply(fms))
	}

	return fresnel.Multiply(d * g / (4*ndotv*ndotl + epsilon))
}
