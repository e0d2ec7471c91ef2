package renderer

import (
	"math"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// CameraConfig positions a look-at pinhole camera
type CameraConfig struct {
	Position core.Vec3 `json:"position"`
	LookAt   core.Vec3 `json:"lookAt"`
	Up       core.Vec3 `json:"up"`
	VFov     float64   `json:"vfov"`     // Vertical field of view in degrees
	Aspect   float64   `json:"aspect"`   // Width over height
	Exposure float64   `json:"exposure"` // Linear multiplier applied before gamma
}

// DefaultCameraConfig returns a camera a few meters above the water looking
// out toward the horizon
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position: core.NewVec3(0, 3.5, 12),
		LookAt:   core.NewVec3(0, 0.5, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     55,
		Aspect:   16.0 / 9.0,
		Exposure: 1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	exposure        float64
}

// NewCamera creates a look-at camera from the config
func NewCamera(cfg CameraConfig) *Camera {
	if cfg.Aspect <= 0 {
		cfg.Aspect = 16.0 / 9.0
	}
	if cfg.VFov <= 0 {
		cfg.VFov = 55
	}
	if cfg.Up == (core.Vec3{}) {
		cfg.Up = core.NewVec3(0, 1, 0)
	}
	if cfg.Exposure <= 0 {
		cfg.Exposure = 1
	}

	theta := cfg.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := cfg.Aspect * viewportHeight

	// Orthonormal camera basis
	w := cfg.Position.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.Position
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		exposure:        cfg.Exposure,
	}
}

// GetRay generates a unit ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()

	return core.NewRay(c.origin, direction)
}

// Exposure returns the linear exposure multiplier
func (c *Camera) Exposure() float64 {
	return c.exposure
}
