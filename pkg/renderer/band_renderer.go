package renderer

import (
	"context"

	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/geometry"
)

// bytesPerPixel is a capacity hint for one "rrr ggg bbb\n" line
const bytesPerPixel = 12

// BandRenderer renders the pixels of a band against a shared camera and world
type BandRenderer struct {
	camera *Camera
	world  geometry.Shape
}

// NewBandRenderer creates a band renderer for the given camera and world
func NewBandRenderer(camera *Camera, world geometry.Shape) *BandRenderer {
	return &BandRenderer{
		camera: camera,
		world:  world,
	}
}

// RenderBand renders every pixel of the band top-to-bottom, left-to-right and
// returns one formatted pixel line per pixel. The buffer is private to the
// call. The context is checked once per row so a failed sibling band can stop
// this one early.
func (br *BandRenderer) RenderBand(ctx context.Context, band *Band) ([]byte, RenderStats, error) {
	bounds := band.Bounds
	buf := make([]byte, 0, bounds.Dx()*bounds.Dy()*bytesPerPixel)
	stats := RenderStats{
		TotalPixels:     bounds.Dx() * bounds.Dy(),
		SamplesPerPixel: br.camera.SamplesPerPixel(),
		Bands:           1,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, err
		}
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixelColor := br.samplePixel(band, i, j)
			buf = AppendPixel(buf, pixelColor)
		}
	}

	stats.TotalSamples = stats.TotalPixels * stats.SamplesPerPixel
	return buf, stats, nil
}

// samplePixel averages SamplesPerPixel primary rays through pixel (i, j)
func (br *BandRenderer) samplePixel(band *Band, i, j int) core.Vec3 {
	var colorAccum core.Vec3
	for sample := 0; sample < br.camera.SamplesPerPixel(); sample++ {
		ray := br.camera.GetRay(i, j, band.Random)
		colorAccum = colorAccum.Add(RayColor(ray, br.world))
	}
	return colorAccum.Multiply(br.camera.PixelSamplesScale())
}
