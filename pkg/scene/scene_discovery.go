package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-tiled-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by Lookup for names that are neither built in
// nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]func(...renderer.CameraConfig) *Scene{
	"default":    NewDefaultScene,
	"empty":      NewEmptyScene,
	"spheregrid": NewSphereGridScene,
}

// BuiltinNames returns the names of the built-in scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in scene with the given name, or loads the
// scene file if name ends in .json. Non-zero fields of override replace the
// scene's camera configuration.
func Lookup(name string, override renderer.CameraConfig) (*Scene, error) {
	if constructor, ok := builtinScenes[name]; ok {
		return constructor(override), nil
	}

	if strings.EqualFold(filepath.Ext(name), ".json") {
		s, err := LoadFile(name)
		if err != nil {
			return nil, err
		}
		s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, override)
		return s, nil
	}

	return nil, fmt.Errorf("%w: %q (built-in scenes: %s)", ErrUnknownScene, name, strings.Join(BuiltinNames(), ", "))
}
