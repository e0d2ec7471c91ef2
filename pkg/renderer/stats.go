package renderer

import "time"

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	TotalPixels     int           // Number of pixels rendered
	TotalSamples    int           // Number of shading samples taken
	SamplesPerPixel int           // Configured supersampling rate
	Tiles           int           // Number of tiles rendered
	Duration        time.Duration // Wall time for the frame
}

// merge folds a per-tile stats record into the frame total
func (rs *RenderStats) merge(tile RenderStats) {
	rs.TotalPixels += tile.TotalPixels
	rs.TotalSamples += tile.TotalSamples
	rs.Tiles += tile.Tiles
}
