package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/geometry"
)

// ErrInvalidWorld is returned when Render is called without a world
var ErrInvalidWorld = errors.New("world must not be nil")

// RenderConfig contains configuration for a render call
type RenderConfig struct {
	NumWorkers int         // Number of parallel bands (0 = use CPU count)
	Seed       int64       // Base seed; band i uses Seed+i
	Logger     core.Logger // Progress output (nil = discard)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,  // Auto-detect CPU count
		Seed:       42, // Deterministic for testing
	}
}

// BandError reports a failure inside one band. Any band failure fails the
// whole render.
type BandError struct {
	Band int
	Err  error
}

func (e *BandError) Error() string {
	return fmt.Sprintf("band %d: %v", e.Band, e.Err)
}

func (e *BandError) Unwrap() error {
	return e.Err
}

// Image is a rendered P3 image
type Image struct {
	Width  int
	Height int
	Pixels []byte // One "r g b\n" line per pixel, rows top-to-bottom
}

// Bytes returns the complete PPM text, header included
func (img *Image) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(len(img.Pixels) + 32)
	_ = img.Encode(&buf)
	return buf.Bytes()
}

// Encode writes the complete PPM text to w
func (img *Image) Encode(w io.Writer) error {
	return WritePPM(w, img.Width, img.Height, img.Pixels)
}

// Render renders the world through the camera. The image rows are split into
// one band per worker, every band runs in its own goroutine, and once all of
// them have finished the bands are concatenated in band order regardless of
// which finished first. The camera and world are only read.
func Render(ctx context.Context, camera *Camera, world geometry.Shape, config RenderConfig) (*Image, RenderStats, error) {
	if world == nil {
		return nil, RenderStats{}, ErrInvalidWorld
	}
	logger := config.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	width, height := camera.Width(), camera.Height()
	bands := NewBandGrid(width, height, numWorkers, config.Seed)
	bandRenderer := NewBandRenderer(camera, world)

	logger.Printf("Rendering %dx%d at %d samples/pixel in %d bands...\n",
		width, height, camera.SamplesPerPixel(), len(bands))

	slots := make([][]byte, len(bands))
	bandStats := make([]RenderStats, len(bands))
	startTime := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for _, band := range bands {
		band := band
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &BandError{Band: band.ID, Err: fmt.Errorf("panic: %v", r)}
				}
			}()

			bandStartTime := time.Now()
			pixels, stats, err := bandRenderer.RenderBand(gctx, band)
			if err != nil {
				return &BandError{Band: band.ID, Err: err}
			}

			// Each band owns its slot, so no locking is needed
			slots[band.ID] = pixels
			bandStats[band.ID] = stats

			logger.Printf("Band %d (rows %d-%d) completed in %v\n",
				band.ID, band.Bounds.Min.Y, band.Bounds.Max.Y-1, time.Since(bandStartTime))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Printf("Render failed: %v\n", err)
		return nil, RenderStats{}, fmt.Errorf("render aborted: %w", err)
	}

	stats := RenderStats{
		SamplesPerPixel: camera.SamplesPerPixel(),
		Bands:           len(bands),
		Elapsed:         time.Since(startTime),
	}
	for _, s := range bandStats {
		stats.merge(s)
	}

	img := &Image{
		Width:  width,
		Height: height,
		Pixels: bytes.Join(slots, nil),
	}

	logger.Printf("Render completed in %v (%d pixels, %d samples)\n",
		stats.Elapsed, stats.TotalPixels, stats.TotalSamples)

	return img, stats, nil
}
