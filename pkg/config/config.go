// Package config assembles the options for a render from built-in defaults,
// an optional .env file, the process environment and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-tiled-raytracer/pkg/renderer"
)

// Environment variables read by Load
const (
	EnvScene   = "RT_SCENE"
	EnvWidth   = "RT_WIDTH"
	EnvAspect  = "RT_ASPECT"
	EnvSamples = "RT_SPP"
	EnvWorkers = "RT_WORKERS"
	EnvSeed    = "RT_SEED"
	EnvOutput  = "RT_OUT"
)

// ErrInvalidWorkers is returned for a negative worker count
var ErrInvalidWorkers = errors.New("workers must not be negative")

// Options contains everything the command line can configure.
// Zero camera fields mean "use the scene's value".
type Options struct {
	Scene      string
	Camera     renderer.CameraConfig
	NumWorkers int   // 0 = use CPU count
	Seed       int64 // Base seed for per-band generators
	Output     string
	Quiet      bool
}

// Default returns the options used when nothing else is configured
func Default() Options {
	return Options{
		Scene:      "default",
		NumWorkers: 0,
		Seed:       renderer.DefaultRenderConfig().Seed,
		Output:     "",
	}
}

// Load returns the defaults overlaid with the given .env files (missing files
// are ignored) and then with the process environment. Values already in the
// environment win over values from the files.
func Load(envFiles ...string) (Options, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Options{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	opts := Default()
	if err := opts.applyEnv(os.LookupEnv); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// applyEnv overlays values found through lookup
func (o *Options) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvScene); ok && v != "" {
		o.Scene = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		o.Output = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &o.Camera.ImageWidth},
		{EnvSamples, &o.Camera.SamplesPerPixel},
		{EnvWorkers, &o.NumWorkers},
	}
	for _, field := range ints {
		v, ok := lookup(field.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", field.key, err)
		}
		*field.dst = n
	}

	if v, ok := lookup(EnvAspect); ok && v != "" {
		aspect, err := ParseAspectRatio(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAspect, err)
		}
		o.Camera.AspectRatio = aspect
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		o.Seed = seed
	}

	return nil
}

// Validate checks the options that are set. Camera fields are checked again
// after they are merged with the scene.
func (o Options) Validate() error {
	if o.Camera.ImageWidth < 0 {
		return fmt.Errorf("%w: got %d", renderer.ErrInvalidImageWidth, o.Camera.ImageWidth)
	}
	if o.Camera.AspectRatio < 0 {
		return fmt.Errorf("%w: got %g", renderer.ErrInvalidAspectRatio, o.Camera.AspectRatio)
	}
	if o.Camera.SamplesPerPixel < 0 {
		return fmt.Errorf("%w: got %d", renderer.ErrInvalidSamplesPerPixel, o.Camera.SamplesPerPixel)
	}
	if o.NumWorkers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.NumWorkers)
	}
	return nil
}

// RenderConfig converts the options to a renderer configuration
func (o Options) RenderConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		NumWorkers: o.NumWorkers,
		Seed:       o.Seed,
	}
}
