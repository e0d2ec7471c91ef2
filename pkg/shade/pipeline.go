package shade

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/material"
	"github.com/wavecrest/go-ocean-render/pkg/tracer"
	"github.com/wavecrest/go-ocean-render/pkg/wave"
)

// Options are the feature flags of the shading pipeline. Historical variants
// of this pipeline diverged on exactly these knobs; they are explicit here so
// there is one parameterized implementation instead of several copies.
type Options struct {
	MultiScatter     bool    `json:"multiScatter"`     // GGX energy compensation on/off
	CausticSamples   int     `json:"causticSamples"`   // Ring probe count for the caustics estimator
	DiffuseWeight    float64 `json:"diffuseWeight"`    // Diffuse energy budget, at most 0.1
	MaxTraceDistance float64 `json:"maxTraceDistance"` // Surface march cap before a ray escapes to sky
}

// DefaultOptions returns the flags of the full pipeline
func DefaultOptions() Options {
	return Options{
		MultiScatter:     true,
		CausticSamples:   5,
		DiffuseWeight:    0.08,
		MaxTraceDistance: 300,
	}
}

// Pipeline combines the wave field, surface tracer, reflectance and
// transmission models, caustics and subsurface scattering into one linear RGB
// color per ray. It is stateless across invocations: identical
// (ray, time, configuration) always shades to the identical color.
type Pipeline struct {
	field        *wave.Field
	normals      *wave.NormalEstimator
	tracer       *tracer.Tracer
	water        material.Water
	env          Environment
	floor        Floor
	transmission *Transmission
	caustics     *Caustics
	subsurface   *Subsurface
	opts         Options
}

// NewPipeline wires a shading pipeline from its collaborators
func NewPipeline(field *wave.Field, normals *wave.NormalEstimator, water material.Water, env Environment, floor Floor, opts Options) *Pipeline {
	tr := tracer.NewDefault()

	caustics := NewCaustics(field)
	if opts.CausticSamples > 0 {
		caustics.Samples = opts.CausticSamples
	}

	return &Pipeline{
		field:        field,
		normals:      normals,
		tracer:       tr,
		water:        water,
		env:          env,
		floor:        floor,
		transmission: NewTransmission(tr, water, floor),
		caustics:     caustics,
		subsurface:   NewSubsurface(),
		opts:         opts,
	}
}

// SurfaceField is the implicit ocean surface f(p,t) = p.y − height(p.xz, t)
func (pl *Pipeline) SurfaceField(p core.Vec3, t float64) float64 {
	return p.Y - pl.field.Height(p.XZ(), t)
}

// Shade returns the linear RGB color seen along the ray at time t. Rays that
// never reach the surface shade as sky; every degenerate case below degrades
// to a clamped or fallback value rather than failing.
func (pl *Pipeline) Shade(ray core.Ray, t float64) core.Vec3 {
	hit := pl.tracer.Trace(ray, pl.opts.MaxTraceDistance, t, pl.SurfaceField)
	if !hit.Hit {
		return pl.env.Color(ray.Direction, t)
	}

	// Snap before shading: sub-step tracer wobble must not leak into the
	// shading inputs between frames
	p := snapPosition(hit.Position)

	light := pl.env.EvaluateLighting(t)
	normal := pl.normals.ShadingNormal(p.XZ(), t, hit.Distance)
	view := ray.Direction.Negate()

	slope := pl.field.Gradient(p.XZ(), t).Length()
	alpha := pl.water.RoughnessFromSlope(slope, pl.field.Spectrum().MeanSteepness())

	// Fresnel split between what the surface mirrors and what it transmits
	fresnel := material.Schlick(core.Clamp01(normal.Dot(view)), pl.water.F0())
	if pl.opts.MultiScatter {
		fms := material.MultiScatterCompensation(alpha)
		fresnel = fresnel.Add(core.NewVec3(1, 1, 1).Subtract(fresnel).Multiply(fms))
	}

	reflected := pl.env.Color(Reflect(ray.Direction, normal), t)

	refractedDir := Refract(ray.Direction, normal, pl.water.Eta())
	refracted, _ := pl.transmission.Transmit(p, refractedDir, t, light)

	one := core.NewVec3(1, 1, 1)
	color := refracted.MultiplyVec(one.Subtract(fresnel)).Add(reflected.MultiplyVec(fresnel))

	sunLight := light.SunColor.Multiply(light.SunIntensity)

	specular := material.SpecularGGX(normal, view, light.SunDirection, alpha, pl.water.F0(), pl.opts.MultiScatter).
		MultiplyVec(sunLight)

	ndotl := math.Max(0, normal.Dot(light.SunDirection))
	diffuse := pl.water.ShallowColor.MultiplyVec(sunLight).
		Multiply(math.Min(pl.opts.DiffuseWeight, 0.1) * ndotl)

	depth := pl.floor.Depth(p.XZ())
	caustic := pl.caustics.Estimate(p, normal, light.SunDirection, pl.water.Eta(), depth, t, sunLight)
	caustic = Absorb(caustic, pl.water.Absorption, depth)

	subsurface := pl.subsurface.Scatter(view, light.SunDirection, pl.water.Absorption, pl.water.ShallowColor, depth, sunLight)

	ambient := light.Ambient.MultiplyVec(pl.water.ShallowColor)

	return color.Add(specular).Add(diffuse).Add(caustic).Add(subsurface).Add(ambient)
}

// snapPosition quantizes the hit position to a fine lattice. The tracer
// converges to slightly different points as time advances; shading the
// snapped position keeps per-pixel inputs stable frame to frame.
func snapPosition(p core.Vec3) core.Vec3 {
	const grid = 1.0 / 1024.0
	return core.NewVec3(
		math.Round(p.X/grid)*grid,
		math.Round(p.Y/grid)*grid,
		math.Round(p.Z/grid)*grid,
	)
}
