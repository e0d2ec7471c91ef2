package wave

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// NormalEstimator derives shading normals from the field's analytic gradient.
// A fine simplex ripple layer adds sub-wavelength detail, and both the ripples
// and the base gradient are attenuated with view distance so distant water
// does not alias into shimmer.
type NormalEstimator struct {
	field  *Field
	detail opensimplex.Noise

	DetailScale    float64 // Spatial frequency of the ripple layer
	DetailStrength float64 // Ripple gradient contribution at distance 0
	Smoothing      float64 // Per-unit-distance gradient attenuation
}

// NewNormalEstimator creates an estimator over the given field. The seed fixes
// the ripple pattern; the same seed always yields the same normals.
func NewNormalEstimator(field *Field, seed int64) *NormalEstimator {
	return &NormalEstimator{
		field:          field,
		detail:         opensimplex.New(seed),
		DetailScale:    1.7,
		DetailStrength: 0.08,
		Smoothing:      0.015,
	}
}

// Normal returns the unsmoothed surface normal from the analytic gradient
func (ne *NormalEstimator) Normal(p core.Vec2, t float64) core.Vec3 {
	grad := ne.field.Gradient(p, t)
	return core.NewVec3(-grad.X, 1, -grad.Y).Normalize()
}

// ShadingNormal returns the normal used for shading: analytic gradient plus
// ripple detail, both faded with view distance.
func (ne *NormalEstimator) ShadingNormal(p core.Vec2, t, viewDistance float64) core.Vec3 {
	atten := 1.0 / (1.0 + ne.Smoothing*viewDistance)

	grad := ne.field.Gradient(p, t).Multiply(atten)
	ripple := ne.rippleGradient(p, t).Multiply(ne.DetailStrength * atten * atten)
	grad = grad.Add(ripple)

	return core.NewVec3(-grad.X, 1, -grad.Y).Normalize()
}

// rippleGradient central-differences the simplex detail layer. The layer is
// decorative, so finite differences are fine here; only the primary field
// carries the analytic-derivative contract.
func (ne *NormalEstimator) rippleGradient(p core.Vec2, t float64) core.Vec2 {
	const eps = 0.01
	s := ne.DetailScale
	drift := t * 0.35

	gx := ne.detail.Eval3((p.X+eps)*s, p.Y*s, drift) - ne.detail.Eval3((p.X-eps)*s, p.Y*s, drift)
	gy := ne.detail.Eval3(p.X*s, (p.Y+eps)*s, drift) - ne.detail.Eval3(p.X*s, (p.Y-eps)*s, drift)

	return core.NewVec2(gx/(2*eps), gy/(2*eps))
}
