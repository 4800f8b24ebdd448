package scene

import (
	"math"

	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/renderer"
)

// NewSphereGridScene creates a grid of small spheres standing on a ground
// sphere in front of the camera
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		ImageWidth:      800,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 50,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("spheregrid", cameraConfig)

	// Ground: a huge sphere whose top touches y = groundY
	groundY := -0.5
	groundRadius := 1000.0
	s.mustAddSphere(core.NewVec3(0, groundY-groundRadius, -3), groundRadius)

	gridSize := 7

	// Fit the grid into a 6x4 patch (x by z) in front of the camera
	targetWidth := 6.0
	targetDepth := 4.0
	spacingX := targetWidth / float64(gridSize-1)
	spacingZ := targetDepth / float64(gridSize-1)

	// Keep radii visible but never overlapping neighbours
	sphereRadius := math.Min(spacingX, spacingZ) * 0.35
	sphereRadius = math.Max(0.02, math.Min(0.35, sphereRadius))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacingX - targetWidth/2.0
			z := -2.0 - float64(j)*spacingZ
			// Slight height variation so the normals show more than one shade
			lift := 0.1 * math.Sin(float64(i+j)*0.5)
			y := groundY + sphereRadius + lift

			s.mustAddSphere(core.NewVec3(x, y, z), sphereRadius)
		}
	}

	return s
}
