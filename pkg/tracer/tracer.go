// Package tracer finds ray intersections with implicit surfaces by adaptive
// sphere tracing. The surface is supplied as a scalar field rather than a
// true signed distance function, so steps are scaled conservatively and the
// tracer watches for overshoot near steep slopes.
package tracer

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// DistanceFunc evaluates the implicit field at a position and time. Positive
// above the surface, negative below; zero on the surface.
type DistanceFunc func(p core.Vec3, t float64) float64

// Config bounds the stepping policy
type Config struct {
	MinStep       float64 // Smallest step, also sets the convergence threshold
	MaxStep       float64 // Largest step in calm regions
	StepScale     float64 // Fraction of the residual taken per step
	MaxIterations int
}

// DefaultConfig returns stepping bounds tuned for wave-scale fields
func DefaultConfig() Config {
	return Config{
		MinStep:       0.01,
		MaxStep:       5.0,
		StepScale:     0.4,
		MaxIterations: 128,
	}
}

// Hit is the result of a trace. Produced and consumed within one shading
// call; it owns nothing.
type Hit struct {
	Hit      bool
	Distance float64
	Position core.Vec3
}

// Tracer sphere-traces rays against an implicit field
type Tracer struct {
	config Config
}

// New creates a tracer with the given stepping config
func New(config Config) *Tracer {
	return &Tracer{config: config}
}

// NewDefault creates a tracer with DefaultConfig
func NewDefault() *Tracer {
	return New(DefaultConfig())
}

// Trace marches the ray against f until the residual converges, the iteration
// budget runs out, or maxDistance is exceeded. The residual is not a true
// distance bound, so each step takes only StepScale of it, clamped to
// [MinStep, MaxStep]. If the residual grew since the previous iteration the
// step collapses to MinStep: that is the overshoot signature of a steep
// trough, where full steps cross the surface repeatedly without converging.
// A miss is not an error; callers shade it as background.
func (tr *Tracer) Trace(ray core.Ray, maxDistance, t float64, f DistanceFunc) Hit {
	traveled := 0.0
	position := ray.Origin
	previous := math.Inf(1)

	for i := 0; i < tr.config.MaxIterations; i++ {
		residual := f(position, t)
		magnitude := math.Abs(residual)

		if magnitude < 1.5*tr.config.MinStep {
			// Refine with one half-residual step along the ray, keeping
			// whichever candidate position has the smaller residual.
			adjusted := traveled + 0.5*residual
			candidate := ray.At(adjusted)
			if math.Abs(f(candidate, t)) < magnitude {
				return Hit{Hit: true, Distance: math.Max(adjusted, 0), Position: candidate}
			}
			return Hit{Hit: true, Distance: math.Max(traveled, 0), Position: position}
		}

		step := core.Clamp(magnitude*tr.config.StepScale, tr.config.MinStep, tr.config.MaxStep)
		if i > 2 && magnitude > previous {
			step = tr.config.MinStep
		}
		previous = magnitude

		traveled += step
		if traveled > maxDistance {
			return Hit{}
		}
		position = ray.At(traveled)
	}

	return Hit{}
}
