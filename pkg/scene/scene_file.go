package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/geometry"
	"github.com/df07/go-tiled-raytracer/pkg/renderer"
)

// CameraFile is the camera section of a scene file
type CameraFile struct {
	ImageWidth      int     `json:"imageWidth"`
	AspectRatio     float64 `json:"aspectRatio"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
}

// SphereFile is one sphere in a scene file
type SphereFile struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// File is the on-disk JSON representation of a scene
//
//	{
//	  "name": "two-spheres",
//	  "camera": {"imageWidth": 400, "aspectRatio": 1.7778, "samplesPerPixel": 50},
//	  "spheres": [{"center": [0, 0, -1], "radius": 0.5}]
//	}
//
// Camera fields left out fall back to renderer.DefaultCameraConfig.
type File struct {
	Name    string       `json:"name,omitempty"`
	Camera  CameraFile   `json:"camera"`
	Spheres []SphereFile `json:"spheres"`
}

// LoadFile reads a JSON scene from path
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// Parse decodes and validates a JSON scene
func Parse(r io.Reader) (*Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var file File
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	cameraConfig := renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), renderer.CameraConfig{
		ImageWidth:      file.Camera.ImageWidth,
		AspectRatio:     file.Camera.AspectRatio,
		SamplesPerPixel: file.Camera.SamplesPerPixel,
	})
	if err := cameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	s := NewScene(file.Name, cameraConfig)
	for i, sphere := range file.Spheres {
		center := core.NewVec3(sphere.Center[0], sphere.Center[1], sphere.Center[2])
		if err := s.AddSphere(center, sphere.Radius); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return s, nil
}

// Save writes the scene as JSON to path. Only spheres are written.
func (s *Scene) Save(path string) error {
	file := File{
		Name: s.Name,
		Camera: CameraFile{
			ImageWidth:      s.CameraConfig.ImageWidth,
			AspectRatio:     s.CameraConfig.AspectRatio,
			SamplesPerPixel: s.CameraConfig.SamplesPerPixel,
		},
		Spheres: make([]SphereFile, 0, s.World.Len()),
	}
	for _, shape := range s.World.Shapes() {
		if sphere, ok := shape.(*geometry.Sphere); ok {
			file.Spheres = append(file.Spheres, SphereFile{
				Center: [3]float64{sphere.Center.X, sphere.Center.Y, sphere.Center.Z},
				Radius: sphere.Radius,
			})
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing scene file: %w", err)
	}
	return nil
}
