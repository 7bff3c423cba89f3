package libio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spheremap/libio"
)

func TestLoadGrayExpandsChannels(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i * 40)
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, gray); err != nil {
		t.Fatal(err)
	}

	ldr, err := libio.Load(buf)
	if err != nil {
		t.Fatal(err)
	}
	if ldr.Format != "png" {
		t.Errorf("format should be png but was %q", ldr.Format)
	}
	if ldr.Stride != 3*4 {
		t.Errorf("stride should be %d but was %d", 3*4, ldr.Stride)
	}
	for i := range gray.Pix {
		j := i * 4
		v := gray.Pix[i]
		if ldr.Pix[j] != v || ldr.Pix[j+1] != v || ldr.Pix[j+2] != v || ldr.Pix[j+3] != 0xff {
			t.Errorf("pixel %d should be %v but was %v", i, []uint8{v, v, v, 0xff}, ldr.Pix[j:j+4])
		}
	}
}

func TestLoadKeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, src); err != nil {
		t.Fatal(err)
	}

	ldr, err := libio.Load(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ldr.Pix, src.Pix) {
		t.Errorf("pixel should be %v but was %v", src.Pix, ldr.Pix)
	}
	if got := ldr.At(0, 0); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("At should return the stored color, got %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := libio.LoadBytes([]byte("definitely not an image")); err == nil {
		t.Error("decoding garbage should fail")
	}
	if _, err := libio.LoadFile(filepath.Join(t.TempDir(), "missing.png")); !os.IsNotExist(err) {
		t.Errorf("loading a missing file should report not exist, got %v", err)
	}
}

func TestRgbaLdrClose(t *testing.T) {
	ldr := libio.NewRgbaLdr(image.Rect(0, 0, 2, 2))
	if len(ldr.Pix) != 16 {
		t.Fatalf("buffer should hold 16 bytes but has %d", len(ldr.Pix))
	}
	ldr.Close()
	if ldr.Pix != nil {
		t.Error("Close should drop the pixel buffer")
	}
	if got := ldr.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("closed image should read as transparent, got %v", got)
	}
}
