package scene

import (
	"path/filepath"
	"testing"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

func TestPresetNames(t *testing.T) {
	names := Names()
	expected := []string{"calm-dawn", "night-storm", "sunny-day", "sunset"}

	if len(names) != len(expected) {
		t.Fatalf("Names() = %v, expected %v", names, expected)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names()[%d] = %v, expected %v", i, names[i], name)
		}
	}
}

func TestByName(t *testing.T) {
	cfg, err := ByName("sunny-day")
	if err != nil {
		t.Fatalf("ByName(sunny-day) error: %v", err)
	}
	if cfg.Name != "sunny-day" {
		t.Errorf("config name = %v, expected sunny-day", cfg.Name)
	}

	if _, err := ByName("no-such-scene"); err == nil {
		t.Error("unknown scene name should error")
	}
}

func TestPresetsBuild(t *testing.T) {
	// Every preset must wire into a working pipeline that shades without
	// numeric failure
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%s) error: %v", name, err)
			}

			pipeline := cfg.Build()
			ray := core.NewRay(core.NewVec3(0, 4, 10), core.NewVec3(0, -0.3, -1).Normalize())
			c := pipeline.Shade(ray, 1.0)

			if c.X < 0 || c.Y < 0 || c.Z < 0 {
				t.Errorf("preset %s shaded to a negative color %v", name, c)
			}
		})
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")

	original := Sunset()
	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded != original {
		t.Errorf("round trip changed the config:\noriginal: %+v\nloaded:   %+v", original, loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/scene.json"); err == nil {
		t.Error("loading a missing file should error")
	}
}

func TestPresetDeterminism(t *testing.T) {
	// Building the same preset twice yields pipelines that shade identically
	a := SunnyDay().Build()
	b := SunnyDay().Build()

	ray := core.NewRay(core.NewVec3(2, 3, 8), core.NewVec3(0.1, -0.4, -1).Normalize())
	if ca, cb := a.Shade(ray, 2.5), b.Shade(ray, 2.5); ca != cb {
		t.Errorf("preset pipelines diverged: %v vs %v", ca, cb)
	}
}
