package config

import "flag"

// RegisterFlags binds command-line flags to o. Flag defaults are the values
// already in o, so parsing only overrides what the user passes.
func RegisterFlags(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.Scene, "scene", o.Scene, "Built-in scene name or path to a .json scene file")
	fs.IntVar(&o.Camera.ImageWidth, "width", o.Camera.ImageWidth, "Image width in pixels (0 = scene default)")
	fs.Var(AspectFlag{Value: &o.Camera.AspectRatio}, "aspect", "Aspect ratio, e.g. 1.7778 or 16:9 (empty = scene default)")
	fs.IntVar(&o.Camera.SamplesPerPixel, "spp", o.Camera.SamplesPerPixel, "Samples per pixel (0 = scene default)")
	fs.IntVar(&o.NumWorkers, "workers", o.NumWorkers, "Number of parallel bands (0 = CPU count)")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Base random seed")
	fs.StringVar(&o.Output, "out", o.Output, "Output file (empty = stdout)")
	fs.BoolVar(&o.Quiet, "quiet", o.Quiet, "Suppress progress output")
}
