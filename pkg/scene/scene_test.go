package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/renderer"
)

func TestScene_AddSphere(t *testing.T) {
	tests := []struct {
		name     string
		center   core.Vec3
		radius   float64
		expected error
	}{
		{"valid", core.NewVec3(0, 0, -1), 0.5, nil},
		{"zero radius", core.NewVec3(0, 0, -1), 0, ErrInvalidRadius},
		{"negative radius", core.NewVec3(0, 0, -1), -0.5, ErrInvalidRadius},
		{"NaN radius", core.NewVec3(0, 0, -1), math.NaN(), ErrInvalidRadius},
		{"infinite radius", core.NewVec3(0, 0, -1), math.Inf(1), ErrInvalidRadius},
		{"NaN center", core.NewVec3(math.NaN(), 0, -1), 1, ErrInvalidCenter},
		{"infinite center", core.NewVec3(0, math.Inf(-1), -1), 1, ErrInvalidCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene("test", renderer.DefaultCameraConfig())
			err := s.AddSphere(tt.center, tt.radius)

			if tt.expected == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if s.World.Len() != 1 {
					t.Errorf("Expected 1 shape, got %d", s.World.Len())
				}
				return
			}

			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if s.World.Len() != 0 {
				t.Errorf("Invalid sphere should not be added, got %d shapes", s.World.Len())
			}
		})
	}
}

func TestScene_NewCamera(t *testing.T) {
	s := NewScene("test", renderer.CameraConfig{ImageWidth: 40, AspectRatio: 2, SamplesPerPixel: 4})
	camera, err := s.NewCamera()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if camera.Width() != 40 || camera.Height() != 20 {
		t.Errorf("Expected 40x20 camera, got %dx%d", camera.Width(), camera.Height())
	}

	s.CameraConfig.SamplesPerPixel = 0
	if _, err := s.NewCamera(); !errors.Is(err, renderer.ErrInvalidSamplesPerPixel) {
		t.Errorf("Expected ErrInvalidSamplesPerPixel, got %v", err)
	}
}

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name           string
		create         func(...renderer.CameraConfig) *Scene
		expectedShapes int
	}{
		{"default", NewDefaultScene, 2},
		{"empty", NewEmptyScene, 0},
		{"spheregrid", NewSphereGridScene, 1 + 7*7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.create()
			if s.Name != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, s.Name)
			}
			if s.World.Len() != tt.expectedShapes {
				t.Errorf("Expected %d shapes, got %d", tt.expectedShapes, s.World.Len())
			}
			if err := s.CameraConfig.Validate(); err != nil {
				t.Errorf("Built-in camera config is invalid: %v", err)
			}

			overridden := tt.create(renderer.CameraConfig{ImageWidth: 32})
			if overridden.CameraConfig.ImageWidth != 32 {
				t.Errorf("Expected width override 32, got %d", overridden.CameraConfig.ImageWidth)
			}
		})
	}
}

func TestDefaultScene_CenterPixelHitsSphere(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{ImageWidth: 41, AspectRatio: 1, SamplesPerPixel: 1})
	camera, err := s.NewCamera()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The middle pixel looks straight down -Z at the small sphere
	color := renderer.RayColor(camera.GetRay(20, 20, nil), s.World)
	expected := core.NewVec3(0.5, 0.5, 1.0)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}
