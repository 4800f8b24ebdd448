package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of primary rays cast
	SamplesPerPixel int           // Samples taken for every pixel
	Bands           int           // Number of bands the image was split into
	Elapsed         time.Duration // Wall time from dispatch to join
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// merge adds the counts of a finished band
func (s *RenderStats) merge(band RenderStats) {
	s.TotalPixels += band.TotalPixels
	s.TotalSamples += band.TotalSamples
}
