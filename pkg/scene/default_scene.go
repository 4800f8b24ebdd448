package scene

import (
	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/renderer"
)

// NewDefaultScene creates a small sphere resting on a very large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("default", cameraConfig)
	s.mustAddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.mustAddSphere(core.NewVec3(0, -100.5, -1), 100)

	return s
}

// NewEmptyScene creates a scene with no shapes, so every pixel shows the sky
func NewEmptyScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return NewScene("empty", cameraConfig)
}
