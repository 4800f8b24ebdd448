package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-tiled-raytracer/pkg/config"
	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/renderer"
	"github.com/df07/go-tiled-raytracer/pkg/scene"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run renders one image and returns the process exit code. The image goes to
// stdout (or -out), everything else to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	help := fs.Bool("help", false, "Show help information")
	config.RegisterFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *help {
		printHelp(fs, stderr)
		return 0
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid options: %v\n", err)
		return 2
	}

	var logger core.Logger = renderer.NewWriterLogger(stderr)
	if opts.Quiet {
		logger = renderer.NopLogger{}
	}

	if err := render(context.Background(), opts, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// render builds the scene and camera, renders and writes the image
func render(ctx context.Context, opts config.Options, stdout io.Writer, logger core.Logger) error {
	selectedScene, err := scene.Lookup(opts.Scene, opts.Camera)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d shapes)...\n", selectedScene.Name, selectedScene.World.Len())

	camera, err := selectedScene.NewCamera()
	if err != nil {
		return err
	}

	renderConfig := opts.RenderConfig()
	renderConfig.Logger = logger

	img, stats, err := renderer.Render(ctx, camera, selectedScene.World, renderConfig)
	if err != nil {
		return err
	}
	logger.Printf("Samples per pixel: %.1f across %d bands\n", stats.AverageSamples(), stats.Bands)

	switch opts.Output {
	case "":
		return img.Encode(stdout)
	case "auto":
		return writeImageFile(defaultOutputPath(selectedScene.Name, time.Now()), img, logger)
	default:
		return writeImageFile(opts.Output, img, logger)
	}
}

// writeImageFile writes img to path, creating parent directories as needed
func writeImageFile(path string, img *renderer.Image, logger core.Logger) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := img.Encode(file); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.ppm
func defaultOutputPath(sceneName string, now time.Time) string {
	base := filepath.Base(sceneName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base, fmt.Sprintf("render_%s.ppm", now.Format("20060102_150405")))
}

func printHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tiled Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.BuiltinNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "  <path>.json - scene file with a camera and a list of spheres")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Environment (also read from .env): %s\n", strings.Join([]string{
		config.EnvScene, config.EnvWidth, config.EnvAspect, config.EnvSamples,
		config.EnvWorkers, config.EnvSeed, config.EnvOutput,
	}, ", "))
	fmt.Fprintln(w, "Use -out auto to save to output/<scene>/render_<timestamp>.ppm")
}
