package renderer

import (
	"math"
	"testing"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

func TestCameraRaysAreUnit(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	for _, uv := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}, {0.25, 0.75}} {
		ray := camera.GetRay(uv[0], uv[1])
		if math.Abs(ray.Direction.Length()-1) > 1e-12 {
			t.Errorf("GetRay(%v, %v) direction length = %v, expected 1", uv[0], uv[1], ray.Direction.Length())
		}
	}
}

func TestCameraCenterRayLooksAtTarget(t *testing.T) {
	cfg := DefaultCameraConfig()
	cfg.Position = core.NewVec3(0, 5, 10)
	cfg.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(cfg)

	ray := camera.GetRay(0.5, 0.5)
	expected := cfg.LookAt.Subtract(cfg.Position).Normalize()

	if math.Abs(ray.Direction.X-expected.X) > 1e-9 ||
		math.Abs(ray.Direction.Y-expected.Y) > 1e-9 ||
		math.Abs(ray.Direction.Z-expected.Z) > 1e-9 {
		t.Errorf("center ray %v should point at the target, expected %v", ray.Direction, expected)
	}
	if ray.Origin != cfg.Position {
		t.Errorf("ray origin %v, expected camera position %v", ray.Origin, cfg.Position)
	}
}

func TestCameraScreenOrientation(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	left := camera.GetRay(0, 0.5)
	right := camera.GetRay(1, 0.5)
	bottom := camera.GetRay(0.5, 0)
	top := camera.GetRay(0.5, 1)

	// s increases rightward, t increases upward
	if right.Direction.X <= left.Direction.X {
		t.Errorf("s should increase toward +X: left %v, right %v", left.Direction.X, right.Direction.X)
	}
	if top.Direction.Y <= bottom.Direction.Y {
		t.Errorf("t should increase toward +Y: bottom %v, top %v", bottom.Direction.Y, top.Direction.Y)
	}
}

func TestCameraConfigDefaults(t *testing.T) {
	// Zero-valued optional fields fall back to sane defaults
	camera := NewCamera(CameraConfig{
		Position: core.NewVec3(0, 2, 5),
		LookAt:   core.NewVec3(0, 0, 0),
	})

	if camera.Exposure() != 1 {
		t.Errorf("default exposure = %v, expected 1", camera.Exposure())
	}
	ray := camera.GetRay(0.5, 0.5)
	if math.Abs(ray.Direction.Length()-1) > 1e-12 {
		t.Errorf("defaulted camera should still produce unit rays, got length %v", ray.Direction.Length())
	}
}
