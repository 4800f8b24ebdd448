package renderer

import (
	"errors"
	"fmt"
	"math"
)

// Camera configuration errors
var (
	ErrInvalidImageWidth      = errors.New("image width must be positive")
	ErrInvalidAspectRatio     = errors.New("aspect ratio must be positive and finite")
	ErrInvalidSamplesPerPixel = errors.New("samples per pixel must be positive")
)

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
	}
}

// Validate reports the first invalid field of the configuration
func (c CameraConfig) Validate() error {
	if c.ImageWidth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidImageWidth, c.ImageWidth)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidAspectRatio, c.AspectRatio)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamplesPerPixel, c.SamplesPerPixel)
	}
	return nil
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	return result
}
