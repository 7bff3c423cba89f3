package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spheremap/envmap"
	"spheremap/libio"
)

func writeFaces(t *testing.T, prefix string, size int) {
	t.Helper()
	for face := envmap.FacePositiveX; face <= envmap.FaceNegativeZ; face++ {
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		for i := 0; i < size*size; i++ {
			img.Set(i%size, i/size, color.NRGBA{uint8(40 * face), 0x80, 0x10, 0xff})
		}
		f, err := os.Create(envmap.FacePath(prefix, "png", face))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
}

func quietArgs(t *testing.T) {
	prev := cargs
	cargs = &commonArgs{quiet: true, supress: true}
	t.Cleanup(func() { cargs = prev })
}

func TestRunConvert(t *testing.T) {
	quietArgs(t)
	prefix := filepath.Join(t.TempDir(), "sky")
	writeFaces(t, prefix, 8)

	args := convertArgs{samples: 5, size: 32}
	if err := runConvert(args, prefix, "png"); err != nil {
		t.Fatal(err)
	}

	ldr, err := libio.LoadFile(defaultOutputPath(prefix))
	if err != nil {
		t.Fatal(err)
	}
	defer ldr.Close()

	if ldr.Rect.Dx() != 32 || ldr.Rect.Dy() != 32 {
		t.Errorf("output should be 32x32 but was %v", ldr.Rect)
	}
	if ldr.Format != "bmp" {
		t.Errorf("default output should be bmp but was %s", ldr.Format)
	}
	// the center looks down +Z
	center := ldr.At(16, 16).(color.NRGBA)
	if center.R != uint8(40*envmap.FacePositiveZ) || center.A != 0xff {
		t.Errorf("center should show the +Z face but was %v", center)
	}
}

func TestRunConvertCompressedOutput(t *testing.T) {
	quietArgs(t)
	dir := t.TempDir()
	prefix := filepath.Join(dir, "sky")
	writeFaces(t, prefix, 4)

	out := filepath.Join(dir, "out.png.lz4")
	args := convertArgs{samples: 1, size: 16, out: out, workers: 2}
	if err := runConvert(args, prefix, "png"); err != nil {
		t.Fatal(err)
	}

	ldr, err := libio.LoadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer ldr.Close()
	if ldr.Format != "png" {
		t.Errorf("output should be png but was %s", ldr.Format)
	}
}

func TestRunConvertErrors(t *testing.T) {
	quietArgs(t)
	dir := t.TempDir()
	prefix := filepath.Join(dir, "sky")

	err := runConvert(convertArgs{samples: 1, size: 16, out: filepath.Join(dir, "out.xyz")}, prefix, "png")
	var ce *envmap.ConfigError
	if !errors.As(err, &ce) || ce.Option != "out" {
		t.Errorf("unknown output format should fail with a ConfigError, got %v", err)
	}

	err = runConvert(convertArgs{samples: 1, size: 16}, prefix, "png")
	var le *envmap.LoadError
	if !errors.As(err, &le) || le.Face != envmap.FacePositiveX {
		t.Errorf("missing faces should fail with a LoadError for +X, got %v", err)
	}
	if _, err := os.Stat(defaultOutputPath(prefix)); !os.IsNotExist(err) {
		t.Error("no output should be written when loading fails")
	}
}

func TestRunInspect(t *testing.T) {
	quietArgs(t)
	dir := t.TempDir()
	prefix := filepath.Join(dir, "sky")
	writeFaces(t, prefix, 4)

	if n := runInspect(inspectArgs{uniform: true}, prefix, "png"); n != 0 {
		t.Errorf("complete cube map should have no problems but had %d", n)
	}

	os.Remove(envmap.FacePath(prefix, "png", envmap.FaceNegativeY))
	if n := runInspect(inspectArgs{}, prefix, "png"); n != 1 {
		t.Errorf("one missing face should be one problem but was %d", n)
	}
}
