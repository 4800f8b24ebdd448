package renderer

import (
	"math/rand"

	"github.com/df07/go-tiled-raytracer/pkg/core"
)

// CameraConfig contains the parameters a camera is built from
type CameraConfig struct {
	ImageWidth      int     // Image width in pixels
	AspectRatio     float64 // Desired width / height
	SamplesPerPixel int     // Primary rays per pixel
}

// Camera is a pinhole camera at the origin looking down -Z.
// It is immutable after construction and safe to share between workers.
type Camera struct {
	imageWidth        int
	imageHeight       int
	samplesPerPixel   int
	pixelSamplesScale float64   // Color scale factor for a sum of pixel samples
	center            core.Vec3 // Camera center
	pixel00Loc        core.Vec3 // Location of pixel 0, 0
	pixelDeltaU       core.Vec3 // Offset to pixel to the right
	pixelDeltaV       core.Vec3 // Offset to pixel below
}

// NewCamera creates a camera for the given configuration
func NewCamera(config CameraConfig) *Camera {
	// Image height is floored and never less than 1
	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	focalLength := 1.0
	viewportHeight := 2.0
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(imageHeight))
	center := core.NewVec3(0, 0, 0)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(config.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		imageWidth:        config.ImageWidth,
		imageHeight:       imageHeight,
		samplesPerPixel:   config.SamplesPerPixel,
		pixelSamplesScale: 1.0 / float64(config.SamplesPerPixel),
		center:            center,
		pixel00Loc:        pixel00Loc,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.imageWidth }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.imageHeight }

// SamplesPerPixel returns the number of primary rays cast per pixel
func (c *Camera) SamplesPerPixel() int { return c.samplesPerPixel }

// PixelSamplesScale returns 1 / SamplesPerPixel
func (c *Camera) PixelSamplesScale() float64 { return c.pixelSamplesScale }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// PixelCenter returns the world-space center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay returns a camera ray from the center toward a randomly sampled
// point inside pixel (i, j). With a single sample per pixel the ray goes
// through the exact pixel center.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	var offset core.Vec3
	if c.samplesPerPixel > 1 {
		offset = sampleSquare(random)
	}

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}

// sampleSquare returns a random point in the [-0.5, 0.5]² unit square
func sampleSquare(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, 0)
}
