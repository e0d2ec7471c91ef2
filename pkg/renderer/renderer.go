// Package renderer turns the per-ray shading pipeline into images: a look-at
// pinhole camera, tile decomposition, and a channel-based worker pool. Frames
// are deterministic: supersampling jitter is hashed from pixel coordinates and
// sample index, never from wall-clock randomness, so the same configuration
// and time always produce the same image.
package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/wavecrest/go-ocean-render/pkg/core"
)

// ShadeFunc computes the linear RGB color seen along a ray at time t
type ShadeFunc func(ray core.Ray, t float64) core.Vec3

// Config controls frame geometry and parallelism
type Config struct {
	Width           int `json:"width"`
	Height          int `json:"height"`
	TileSize        int `json:"tileSize"`
	SamplesPerPixel int `json:"samplesPerPixel"`
	NumWorkers      int `json:"numWorkers"` // 0 means one per CPU
}

// DefaultConfig returns a preview-sized frame
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          360,
		TileSize:        64,
		SamplesPerPixel: 4,
		NumWorkers:      0,
	}
}

// Renderer renders frames by shading camera rays in parallel tiles
type Renderer struct {
	config Config
	camera *Camera
	shade  ShadeFunc
	logger core.Logger
}

// tileTask is one rectangle of the frame handed to a worker
type tileTask struct {
	id     int
	bounds image.Rectangle
}

// New creates a renderer. A nil logger is replaced with a silent one.
func New(config Config, camera *Camera, shade ShadeFunc, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.SilentLogger{}
	}
	return &Renderer{
		config: config,
		camera: camera,
		shade:  shade,
		logger: logger,
	}
}

// Render shades a full frame at time t. Tiles never overlap, so workers write
// their pixels into the shared image without locking.
func (r *Renderer) Render(t float64) (*image.RGBA, RenderStats) {
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	tiles := tileGrid(r.config.Width, r.config.Height, r.config.TileSize)

	taskQueue := make(chan tileTask, len(tiles))
	resultQueue := make(chan RenderStats, len(tiles))

	var wg sync.WaitGroup
	for w := 0; w < r.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskQueue {
				resultQueue <- r.renderTile(img, task.bounds, t)
			}
		}()
	}

	for _, task := range tiles {
		taskQueue <- task
	}
	close(taskQueue)
	wg.Wait()
	close(resultQueue)

	stats := RenderStats{SamplesPerPixel: r.config.SamplesPerPixel}
	for tileStats := range resultQueue {
		stats.merge(tileStats)
	}
	stats.Duration = time.Since(start)

	r.logger.Printf("rendered %dx%d frame: %d tiles, %d samples in %v",
		r.config.Width, r.config.Height, stats.Tiles, stats.TotalSamples, stats.Duration)

	return img, stats
}

// renderTile shades every pixel in the bounds and writes it to the image
func (r *Renderer) renderTile(img *image.RGBA, bounds image.Rectangle, t float64) RenderStats {
	samples := r.config.SamplesPerPixel
	exposure := r.camera.Exposure()

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var accum core.Vec3
			for s := 0; s < samples; s++ {
				jx, jy := sampleJitter(i, j, s)
				u := (float64(i) + jx) / float64(r.config.Width)
				v := (float64(j) + jy) / float64(r.config.Height)

				ray := r.camera.GetRay(u, v)
				accum = accum.Add(r.shade(ray, t))
			}
			avg := accum.Multiply(exposure / float64(samples))
			img.SetRGBA(i, r.config.Height-1-j, vec3ToColor(avg))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * samples,
		Tiles:        1,
	}
}

// sampleJitter returns a sub-pixel offset hashed from pixel and sample index.
// Sample 0 is pinned to the pixel center so single-sample renders stay crisp.
func sampleJitter(i, j, s int) (float64, float64) {
	if s == 0 {
		return 0.5, 0.5
	}
	jx := core.Hash11(float64(i)*12.9898 + float64(j)*78.233 + float64(s)*37.719)
	jy := core.Hash11(float64(i)*93.989 + float64(j)*67.345 + float64(s)*13.787)
	return jx, jy
}

// tileGrid decomposes the frame into non-overlapping tile tasks
func tileGrid(width, height, tileSize int) []tileTask {
	var tiles []tileTask
	id := 0
	for y0 := 0; y0 < height; y0 += tileSize {
		for x0 := 0; x0 < width; x0 += tileSize {
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, tileTask{id: id, bounds: image.Rect(x0, y0, x1, y1)})
			id++
		}
	}
	return tiles
}

// vec3ToColor converts a linear Vec3 color to RGBA with clamping and gamma
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0, 1)

	return color.RGBA{
		R: uint8(colorVec.X * 255),
		G: uint8(colorVec.Y * 255),
		B: uint8(colorVec.Z * 255),
		A: 255,
	}
}
