package shade

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/wave"
)

// Caustics approximates underwater light concentration with a small jittered
// ring of wave-gradient probes around the surface point. It is a
// Monte-Carlo-style proxy for real caustic transport: the fixed sample
// pattern is decorrelated frame to frame by a position/time-hashed phase,
// trading a little temporal noise for much less static aliasing.
type Caustics struct {
	field *wave.Field

	Samples    int     // Fixed count; scaling it with roughness would flicker
	RingRadius float64 // Probe ring radius at reference depth
	RingSigma  float64 // Gaussian width of the ring weighting
	Intensity  float64
}

// NewCaustics creates an estimator over the given wave field
func NewCaustics(field *wave.Field) *Caustics {
	return &Caustics{
		field:      field,
		Samples:    5,
		RingRadius: 0.6,
		RingSigma:  0.35,
		Intensity:  0.9,
	}
}

// Estimate returns the additive caustic light arriving at the submerged
// sample below surfacePoint. sunLight is the sun color pre-multiplied by
// intensity; eta is the refraction ratio used to bend it through the local
// normal. Total internal reflection yields exactly zero.
func (c *Caustics) Estimate(surfacePoint, normal, sunDirection core.Vec3, eta float64, depth, t float64, sunLight core.Vec3) core.Vec3 {
	incident := sunDirection.Negate()
	refracted := Refract(incident, normal, eta)

	// TIR fallback reflects back above the surface; no light enters
	if refracted.Dot(normal.Negate()) < 0 {
		return core.Vec3{}
	}

	p := surfacePoint.XZ()
	radius := c.RingRadius * (0.3 + 0.7*core.Clamp01(depth/10))

	// Hashed phase offset, seeded by position and time, rotates the ring so
	// the 5-point pattern does not imprint statically
	jitter := core.Hash11(p.X*12.9898+p.Y*78.233+t*3.17) * 2 * math.Pi

	var focusSum, weightSum float64
	for i := 0; i < c.Samples; i++ {
		angle := 2*math.Pi*float64(i)/float64(c.Samples) + jitter
		r := radius * (0.75 + 0.5*core.Hash11(float64(i)*7.13+jitter))
		q := p.Add(core.NewVec2(math.Cos(angle), math.Sin(angle)).Multiply(r))

		// Steep local slope concentrates refracted light
		focus := c.field.Gradient(q, t).Length()

		// Gaussian weight centered on the nominal ring radius
		d := (r - radius) / c.RingSigma
		weight := math.Exp(-d * d)

		focusSum += focus * weight
		weightSum += weight
	}
	if weightSum < 1e-9 {
		return core.Vec3{}
	}
	focus := focusSum / weightSum

	// Coarse large-scale height term for non-local banding structure
	bound := c.field.AmplitudeSum()
	if bound > 1e-9 {
		coarse := 0.5 + 0.5*c.field.Height(p.Multiply(0.25), t)/bound
		focus = core.Lerp(focus, focus*coarse, 0.4)
	}

	// Deeper water softens and dims the pattern
	focus = core.Lerp(focus, 0.5*focus, core.Clamp01(depth/30))
	falloff := math.Exp(-0.08 * depth)

	// Grazing refraction spreads the light out
	grazing := core.Clamp01(refracted.Dot(normal.Negate()))

	return sunLight.Multiply(c.Intensity * focus * falloff * grazing)
}
