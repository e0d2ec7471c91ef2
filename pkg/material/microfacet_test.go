package material

import (
	"math"
	"testing"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

func TestSpecularGGX_NoBackfaceLeakage(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	f0 := DefaultWater().F0()

	tests := []struct {
		name  string
		view  core.Vec3
		light core.Vec3
	}{
		{"light below surface", core.NewVec3(0, 1, 1).Normalize(), core.NewVec3(0, -1, 0)},
		{"view below surface", core.NewVec3(0, -1, 1).Normalize(), core.NewVec3(0, 1, 0)},
		{"both below surface", core.NewVec3(0, -1, 0), core.NewVec3(0, -1, 0)},
		{"light exactly at horizon", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SpecularGGX(normal, tt.view, tt.light, 0.1, f0, true)
			if s != (core.Vec3{}) {
				t.Errorf("Expected exactly zero specular, got %v", s)
			}
		})
	}
}

func TestSpecularGGX_MirrorConfigurationPositive(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	view := core.NewVec3(0, 1, 1).Normalize()
	light := core.NewVec3(0, 1, -1).Normalize()

	s := SpecularGGX(normal, view, light, 0.05, DefaultWater().F0(), false)
	if s.X <= 0 || s.Y <= 0 || s.Z <= 0 {
		t.Errorf("Expected positive specular in mirror configuration, got %v", s)
	}
	if math.IsNaN(s.X) || math.IsInf(s.X, 0) {
		t.Errorf("Specular not finite: %v", s)
	}
}

func TestSpecularGGX_MultiScatterNeverDarkens(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	view := core.NewVec3(0, 1, 1).Normalize()
	light := core.NewVec3(0.2, 1, -1).Normalize()
	f0 := DefaultWater().F0()

	for _, alpha := range []float64{0.02, 0.1, 0.25, 0.5} {
		single := SpecularGGX(normal, view, light, alpha, f0, false)
		multi := SpecularGGX(normal, view, light, alpha, f0, true)

		if multi.X < single.X || multi.Y < single.Y || multi.Z < single.Z {
			t.Errorf("alpha=%f: compensation darkened specular: %v < %v", alpha, multi, single)
		}
	}
}

func TestMultiScatterCompensation_Limits(t *testing.T) {
	if fms := MultiScatterCompensation(0); fms > 1e-6 {
		t.Errorf("Expected no compensation at mirror limit, got %f", fms)
	}

	prev := -1.0
	for _, alpha := range []float64{0.1, 0.3, 0.6, 1.0} {
		fms := MultiScatterCompensation(alpha)
		if fms < 0 || fms > 1 {
			t.Fatalf("Fms %f outside [0,1] at alpha=%f", fms, alpha)
		}
		if fms < prev {
			t.Fatalf("Fms not increasing with roughness at alpha=%f", alpha)
		}
		prev = fms
	}
}

func TestDistributionGGX_FiniteAtDegenerateInputs(t *testing.T) {
	// alpha=0 with ndoth=1 is the delta-function limit; the epsilon guard
	// keeps it large but finite
	d := DistributionGGX(1, 0)
	if math.IsInf(d, 0) || math.IsNaN(d) {
		t.Errorf("Expected finite distribution, got %f", d)
	}
}
