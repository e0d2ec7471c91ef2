// Package server exposes the ocean renderer over HTTP: a PNG render endpoint,
// a health check, and a scene preset listing.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/wavecrest/go-ocean-render/pkg/core"
	"github.com/wavecrest/go-ocean-render/pkg/renderer"
	"github.com/wavecrest/go-ocean-render/pkg/scene"
)

// Server handles web requests for the ocean renderer
type Server struct {
	port   int
	logger *zap.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a validated render request
type RenderRequest struct {
	Scene   string  `json:"scene"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Time    float64 `json:"time"`    // Simulation time in seconds
	Samples int     `json:"samples"` // Supersampling rate per pixel
}

// Handler returns the route table, exported so tests can drive it without a
// listening socket
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting web server", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scene presets
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.Names()})
}

// handleRender renders one frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	cfg, err := scene.ByName(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.logger.Info("rendering frame",
		zap.String("scene", req.Scene),
		zap.Int("width", req.Width),
		zap.Int("height", req.Height),
		zap.Float64("time", req.Time),
		zap.Int("samples", req.Samples))

	cfg.Camera.Aspect = float64(req.Width) / float64(req.Height)
	pipeline := cfg.Build()

	renderCfg := renderer.DefaultConfig()
	renderCfg.Width = req.Width
	renderCfg.Height = req.Height
	renderCfg.SamplesPerPixel = req.Samples

	frame := renderer.New(renderCfg, renderer.NewCamera(cfg.Camera), pipeline.Shade, core.NewZapLogger(s.logger))
	img, stats := frame.Render(req.Time)

	s.logger.Info("frame complete",
		zap.Int("samples", stats.TotalSamples),
		zap.Duration("duration", stats.Duration))

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		s.logger.Error("failed to encode PNG", zap.Error(err))
	}
}

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if name := r.URL.Query().Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "sunny-day"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 640, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 360, 16, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(r.URL.Query(), "samples", 2, 1, 32); err != nil {
		return nil, err
	}
	if req.Time, err = parseFloatParam(r.URL.Query(), "time", 0, 0, 86400); err != nil {
		return nil, err
	}

	if req.Width*req.Height > 1280*720 && req.Samples > 8 {
		s.logger.Warn("large frame with high sample count may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
