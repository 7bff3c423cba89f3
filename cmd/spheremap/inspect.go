package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"spheremap/envmap"
	"spheremap/libio"
)

type inspectArgs struct {
	commonArgs
	uniform bool
}

func createInspectCommand() *command {
	args := inspectArgs{}

	flags := flag.NewFlagSet("inspect", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	flags.BoolVar(&args.uniform, "uniform", args.uniform, "report faces that differ in size")

	return &command{
		Name: "inspect",
		Help: "check that the six cube map faces load",
		Run: func(self *command) {
			if self.Flags.NArg() != 2 {
				printCommandUsage(self, " prefix extension")
			}
			setCommonArgs(&args.commonArgs)

			if problems := runInspect(args, self.Flags.Arg(0), self.Flags.Arg(1)); problems > 0 {
				fmt.Fprintf(os.Stderr, "%d problem(s) found\n", problems)
				os.Exit(1)
			}
		},
		Flags: flags,
	}
}

// runInspect loads every face on its own so all problems are reported, not
// just the first one.
func runInspect(args inspectArgs, prefix, ext string) (problems int) {
	var ref *envmap.FaceTexture

	for face := envmap.FacePositiveX; face <= envmap.FaceNegativeZ; face++ {
		p := envmap.FacePath(prefix, ext, face)

		ldr, err := libio.LoadFile(p)
		if err != nil {
			softerr(&envmap.LoadError{Face: face, Path: p, Err: err})
			problems++
			continue
		}

		tex, err := envmap.NewFaceTexture(face, ldr)
		if err != nil {
			ldr.Close()
			softerr(err)
			problems++
			continue
		}

		if !cargs.quiet {
			fmt.Printf("%-3v %-7s %4dx%-4d %-5s %q\n", face, face.Suffix(), tex.Width, tex.Height, ldr.Format, filepath.ToSlash(p))
		}

		if !tex.Square() {
			softerr(&envmap.LoadError{Face: face, Path: p, Err: fmt.Errorf("face is not square: %dx%d", tex.Width, tex.Height)})
			problems++
		}

		if ref == nil {
			ref = tex
		} else {
			if args.uniform && (tex.Width != ref.Width || tex.Height != ref.Height) {
				softerr(&envmap.LoadError{Face: face, Path: p, Err: fmt.Errorf("face size %dx%d doesn't match %dx%d", tex.Width, tex.Height, ref.Width, ref.Height)})
				problems++
			}
			tex.Release()
		}
	}

	if ref != nil {
		ref.Release()
	}

	return problems
}
