package renderer

import (
	"image"
	"testing"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// gradientShade is a cheap deterministic stand-in for the shading pipeline
func gradientShade(ray core.Ray, t float64) core.Vec3 {
	up := core.Clamp01(ray.Direction.Y)
	return core.NewVec3(0.2, 0.4, 0.8).Multiply(up).Add(core.NewVec3(0.1, 0.1, 0.1))
}

func testRenderer(samples int) *Renderer {
	cfg := Config{
		Width:           64,
		Height:          36,
		TileSize:        16,
		SamplesPerPixel: samples,
		NumWorkers:      4,
	}
	return New(cfg, NewCamera(DefaultCameraConfig()), gradientShade, core.SilentLogger{})
}

func TestRenderDimensions(t *testing.T) {
	img, stats := testRenderer(2).Render(0)

	if img.Bounds() != image.Rect(0, 0, 64, 36) {
		t.Errorf("image bounds = %v, expected 64x36", img.Bounds())
	}
	if stats.TotalPixels != 64*36 {
		t.Errorf("TotalPixels = %v, expected %v", stats.TotalPixels, 64*36)
	}
	if stats.TotalSamples != 64*36*2 {
		t.Errorf("TotalSamples = %v, expected %v", stats.TotalSamples, 64*36*2)
	}
	if stats.Tiles != 4*3 {
		t.Errorf("Tiles = %v, expected 12", stats.Tiles)
	}
}

func TestRenderDeterministic(t *testing.T) {
	// Two renders of the same frame must agree byte for byte regardless of
	// tile scheduling order
	a, _ := testRenderer(3).Render(1.5)
	b, _ := testRenderer(3).Render(1.5)

	if len(a.Pix) != len(b.Pix) {
		t.Fatalf("pixel buffers differ in size: %v vs %v", len(a.Pix), len(b.Pix))
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("renders diverge at byte %v: %v vs %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestTileGridCoversFrame(t *testing.T) {
	tiles := tileGrid(100, 70, 32)

	covered := make([][]bool, 70)
	for j := range covered {
		covered[j] = make([]bool, 100)
	}
	for _, tile := range tiles {
		for j := tile.bounds.Min.Y; j < tile.bounds.Max.Y; j++ {
			for i := tile.bounds.Min.X; i < tile.bounds.Max.X; i++ {
				if covered[j][i] {
					t.Fatalf("pixel (%v, %v) covered by two tiles", i, j)
				}
				covered[j][i] = true
			}
		}
	}
	for j := range covered {
		for i := range covered[j] {
			if !covered[j][i] {
				t.Fatalf("pixel (%v, %v) not covered by any tile", i, j)
			}
		}
	}
}

func TestSampleJitterDeterministicAndBounded(t *testing.T) {
	for s := 0; s < 8; s++ {
		jx, jy := sampleJitter(13, 27, s)
		jx2, jy2 := sampleJitter(13, 27, s)
		if jx != jx2 || jy != jy2 {
			t.Fatalf("jitter for sample %v is not deterministic", s)
		}
		if jx < 0 || jx >= 1 || jy < 0 || jy >= 1 {
			t.Fatalf("jitter (%v, %v) outside [0, 1)", jx, jy)
		}
	}

	// Sample 0 pins to the pixel center
	jx, jy := sampleJitter(5, 9, 0)
	if jx != 0.5 || jy != 0.5 {
		t.Errorf("sample 0 jitter = (%v, %v), expected pixel center", jx, jy)
	}
}

func TestVec3ToColorClamps(t *testing.T) {
	tests := []struct {
		name  string
		input core.Vec3
		check func(r, g, b uint8) bool
	}{
		{"black", core.NewVec3(0, 0, 0), func(r, g, b uint8) bool { return r == 0 && g == 0 && b == 0 }},
		{"white", core.NewVec3(1, 1, 1), func(r, g, b uint8) bool { return r == 255 && g == 255 && b == 255 }},
		{"overbright", core.NewVec3(5, 5, 5), func(r, g, b uint8) bool { return r == 255 && g == 255 && b == 255 }},
		{"negative", core.NewVec3(-1, -1, -1), func(r, g, b uint8) bool { return r == 0 && g == 0 && b == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := vec3ToColor(tt.input)
			if !tt.check(c.R, c.G, c.B) {
				t.Errorf("vec3ToColor(%v) = %v", tt.input, c)
			}
			if c.A != 255 {
				t.Errorf("alpha = %v, expected 255", c.A)
			}
		})
	}
}
