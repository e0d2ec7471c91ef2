package shade

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/material"
	"github.com/wavecrest/go-ocean-render/pkg/tracer"
)

// Transmission shades the refracted ray below the surface: a submerged
// raymarch against the seabed field, Beer-Lambert absorption over the path,
// and a separate depth-graded tint. Absorption is the physical attenuation;
// the shallow/deep tint is a stylistic grade layered on top. The two are
// independent mechanisms and stay separate here.
type Transmission struct {
	tracer *tracer.Tracer
	water  material.Water
	floor  Floor

	MaxMarchDistance float64 // Path length cap for the submerged march
	TintStrength     float64 // Weight of the depth tint over the absorbed color
}

// NewTransmission creates a transmission model over the given seabed
func NewTransmission(tr *tracer.Tracer, water material.Water, floor Floor) *Transmission {
	return &Transmission{
		tracer:           tr,
		water:            water,
		floor:            floor,
		MaxMarchDistance: 60,
		TintStrength:     0.3,
	}
}

// Transmit returns the color carried back up through the surface along the
// refracted direction, and the submerged path length it traveled. A march
// that never reaches the floor is shaded as deep water, not an error.
func (tm *Transmission) Transmit(surfacePoint, refracted core.Vec3, t float64, light LightingInfo) (core.Vec3, float64) {
	// Nudge the origin below the interface so the march does not
	// immediately converge on the surface it just left
	origin := surfacePoint.Add(refracted.Multiply(0.05))
	ray := core.NewRay(origin, refracted)

	hit := tm.tracer.Trace(ray, tm.MaxMarchDistance, t, tm.floor.DistanceFunc())

	var base core.Vec3
	pathLength := tm.MaxMarchDistance
	if hit.Hit {
		pathLength = hit.Distance
		base = tm.shadeFloor(hit.Position, t, light, pathLength)
	} else {
		base = tm.water.DeepColor
	}

	transmitted := Absorb(base, tm.water.Absorption, pathLength)

	// Stylistic grade: shallow color near the surface, deep color below
	verticalDepth := pathLength * math.Max(0.2, -refracted.Y)
	grade := core.Clamp01(1 - math.Exp(-0.12*verticalDepth))
	tint := tm.water.ShallowColor.Lerp(tm.water.DeepColor, grade)

	return transmitted.Lerp(tint, tm.TintStrength), pathLength
}

// shadeFloor lights the seabed point with sun filtered through the column
func (tm *Transmission) shadeFloor(p core.Vec3, t float64, light LightingInfo, pathLength float64) core.Vec3 {
	normal := fieldNormal(tm.floor.DistanceFunc(), p, t)
	diffuse := math.Max(0, normal.Dot(light.SunDirection))

	// Sunlight reaching the floor has already crossed the column once
	sun := Absorb(light.SunColor.Multiply(light.SunIntensity), tm.water.Absorption, pathLength)

	albedo := tm.floor.Albedo(p)
	return albedo.MultiplyVec(sun.Multiply(diffuse).Add(light.Ambient))
}

// fieldNormal central-differences an implicit field for a shading normal.
// Seabed fields are smooth, so finite differences are stable here.
func fieldNormal(f tracer.DistanceFunc, p core.Vec3, t float64) core.Vec3 {
	const eps = 0.05
	dx := f(core.NewVec3(p.X+eps, p.Y, p.Z), t) - f(core.NewVec3(p.X-eps, p.Y, p.Z), t)
	dy := f(core.NewVec3(p.X, p.Y+eps, p.Z), t) - f(core.NewVec3(p.X, p.Y-eps, p.Z), t)
	dz := f(core.NewVec3(p.X, p.Y, p.Z+eps), t) - f(core.NewVec3(p.X, p.Y, p.Z-eps), t)
	return core.NewVec3(dx, dy, dz).Normalize()
}
