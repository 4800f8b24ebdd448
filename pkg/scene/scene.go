package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/geometry"
	"github.com/df07/go-tiled-raytracer/pkg/renderer"
)

// Scene construction errors
var (
	ErrInvalidRadius = errors.New("sphere radius must be positive and finite")
	ErrInvalidCenter = errors.New("sphere center must be finite")
)

// Scene contains everything needed for one render: the camera parameters
// and the shapes. Once built it is only read.
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	World        *geometry.HittableList
}

// NewScene creates an empty scene with the given camera configuration
func NewScene(name string, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		CameraConfig: cameraConfig,
		World:        geometry.NewHittableList(),
	}
}

// AddSphere validates and adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64) error {
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(center.Z) {
		return fmt.Errorf("%w: got %v", ErrInvalidCenter, center)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	s.World.Add(geometry.NewSphere(center, radius))
	return nil
}

// NewCamera builds the camera for this scene
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	if err := s.CameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return renderer.NewCamera(s.CameraConfig), nil
}

// mustAddSphere is for built-in scenes whose values are known to be valid
func (s *Scene) mustAddSphere(center core.Vec3, radius float64) {
	if err := s.AddSphere(center, radius); err != nil {
		panic(err)
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
