package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/renderer"
	"github.com/wavecrest/go-ocean-render/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "sunny-day", "Scene preset name")
	sceneFile := flag.String("scene-file", "", "Load scene config from a JSON file instead of a preset")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 360, "Image height in pixels")
	timeSeconds := flag.Float64("time", 0, "Simulation time in seconds")
	samples := flag.Int("samples", 4, "Supersampling rate per pixel")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ocean Renderer")
		fmt.Println("Usage: ocean-render [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	logger := core.NewZapLogger(zapLogger)

	cfg, err := loadScene(*sceneName, *sceneFile)
	if err != nil {
		zapLogger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}

	zapLogger.Info("rendering scene",
		zap.String("scene", cfg.Name),
		zap.Int("width", *width),
		zap.Int("height", *height),
		zap.Float64("time", *timeSeconds),
		zap.Int("samples", *samples))

	cfg.Camera.Aspect = float64(*width) / float64(*height)
	pipeline := cfg.Build()

	renderCfg := renderer.DefaultConfig()
	renderCfg.Width = *width
	renderCfg.Height = *height
	renderCfg.SamplesPerPixel = *samples

	r := renderer.New(renderCfg, renderer.NewCamera(cfg.Camera), pipeline.Shade, logger)
	img, stats := r.Render(*timeSeconds)

	zapLogger.Info("render complete",
		zap.Int("pixels", stats.TotalPixels),
		zap.Int("samples", stats.TotalSamples),
		zap.Duration("duration", stats.Duration))

	filename := *out
	if filename == "" {
		filename = defaultOutputPath(cfg.Name, time.Now())
	}
	if err := writePNG(filename, img); err != nil {
		zapLogger.Error("failed to save render", zap.Error(err))
		os.Exit(1)
	}

	zapLogger.Info("render saved", zap.String("file", filename))
}

// loadScene resolves the scene config from a file or a preset name
func loadScene(name, file string) (scene.Config, error) {
	if file != "" {
		return scene.Load(file)
	}
	return scene.ByName(name)
}

// defaultOutputPath builds output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// writePNG creates the parent directory and encodes the image
func writePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
