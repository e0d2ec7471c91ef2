package main

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2026, 8, 25, 14, 30, 5, 0, time.UTC)
	path := defaultOutputPath("sunset", now)

	expected := filepath.Join("output", "sunset", "render_20260825_143005.png")
	if path != expected {
		t.Errorf("defaultOutputPath() = %v, expected %v", path, expected)
	}
}

func TestLoadSceneByPreset(t *testing.T) {
	cfg, err := loadScene("calm-dawn", "")
	if err != nil {
		t.Fatalf("loadScene(calm-dawn) error: %v", err)
	}
	if cfg.Name != "calm-dawn" {
		t.Errorf("scene name = %v, expected calm-dawn", cfg.Name)
	}
}

func TestLoadSceneUnknownPreset(t *testing.T) {
	if _, err := loadScene("atlantis", ""); err == nil {
		t.Error("unknown preset should error")
	}
}

func TestLoadSceneFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")

	cfg, err := loadScene("sunny-day", "")
	if err != nil {
		t.Fatalf("loadScene error: %v", err)
	}
	cfg.Name = "custom"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := loadScene("ignored", path)
	if err != nil {
		t.Fatalf("loadScene from file error: %v", err)
	}
	if loaded.Name != "custom" {
		t.Errorf("loaded scene name = %v, expected custom", loaded.Name)
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.png")

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.HasPrefix(string(data[1:4]), "PNG") {
		t.Error("output does not look like a PNG file")
	}
}
