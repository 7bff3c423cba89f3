package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"spheremap/envmap"
	"spheremap/libio"
)

type convertArgs struct {
	commonArgs
	samples samples
	size    outputSize
	out     string
	workers int
	uniform bool
}

func createConvertCommand() *command {

	args := convertArgs{
		samples: 1,
		size:    1024,
	}

	flags := flag.NewFlagSet("convert", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	flags.Var(&args.samples, "aa", "the number of anti-aliasing samples per pixel; 1 or 5")
	flags.Var(&args.size, "size", "the spheremap resolution in px")
	flags.StringVar(&args.out, "out", args.out, "the output file (default \"<prefix>_spheremap.bmp\"); bmp, png, jpg or tif, optionally .lz4")
	flags.StringVar(&args.out, "o", args.out, "shorthand for out")
	flags.IntVar(&args.workers, "workers", args.workers, "the number of rows rendered in parallel, 0 uses every cpu")
	flags.BoolVar(&args.uniform, "uniform", args.uniform, "require all faces to have the same size")

	return &command{
		Name: "convert",
		Help: "convert cube map faces to a spheremap",
		Run: func(self *command) {
			if self.Flags.NArg() != 2 {
				printCommandUsage(self, " prefix extension")
			}
			setCommonArgs(&args.commonArgs)

			harderr(runConvert(args, self.Flags.Arg(0), self.Flags.Arg(1)))
		},
		Flags: flags,
	}
}

func runConvert(args convertArgs, prefix, ext string) error {
	outFilename := args.out
	if outFilename == "" {
		outFilename = defaultOutputPath(prefix)
	}
	if _, err := libio.FormatFromPath(outFilename); err != nil {
		return &envmap.ConfigError{Option: "out", Value: outFilename, Reason: err.Error()}
	}

	raster, err := envmap.NewRasterizer(envmap.RasterOptions{
		Samples: int(args.samples),
		Workers: args.workers,
	})
	if err != nil {
		return err
	}

	start := time.Now()

	if !cargs.quiet {
		fmt.Printf("Loading cube map %q ...\n", filepath.ToSlash(envmap.FacePath(prefix, ext, envmap.FacePositiveX)))
	}
	cube, err := envmap.LoadCubemap(prefix, ext, envmap.LoadOptions{RequireUniformSize: args.uniform})
	if err != nil {
		return err
	}
	defer cube.Release()

	size := int(args.size)
	if !cargs.quiet {
		fmt.Printf("Converting to %dx%d spheremap with %d sample(s) per pixel ...\n", size, size, raster.Samples())
	}
	sm, err := raster.Render(cube, size)
	if err != nil {
		return err
	}

	if !cargs.quiet {
		fmt.Printf("Writing %q ...\n", filepath.ToSlash(filepath.Clean(outFilename)))
	}
	err = libio.SaveFile(outFilename, sm.ToIntImage().ToRGBA())
	if err != nil {
		return err
	}

	if !cargs.quiet {
		took := float32(time.Since(start).Milliseconds()) / 1000
		fmt.Printf("Converted in %.3f seconds\n", took)
	}
	return nil
}
