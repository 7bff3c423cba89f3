package envmap

import (
	"encoding/binary"
	"errors"
	"fmt"

	"spheremap/libio"
)

var (
	errNoPixels    = errors.New("image could not be decoded")
	errShortBuffer = errors.New("pixel buffer is smaller than the image")
)

// FaceTexture is the decoded image of one cube face. It takes ownership of
// the decoded buffer and is read-only after creation.
type FaceTexture struct {
	Width, Height int
	ldr           *libio.RgbaLdr
}

func NewFaceTexture(face CubeFace, ldr *libio.RgbaLdr) (*FaceTexture, error) {
	if ldr == nil || ldr.Pix == nil {
		return nil, &LoadError{Face: face, Err: errNoPixels}
	}

	w, h := ldr.Rect.Dx(), ldr.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil, &LoadError{Face: face, Err: fmt.Errorf("%w %dx%d", libio.ErrEmptyImage, w, h)}
	}
	if ldr.Stride < w*4 || len(ldr.Pix) < (h-1)*ldr.Stride+w*4 {
		return nil, &LoadError{Face: face, Err: errShortBuffer}
	}

	return &FaceTexture{
		Width:  w,
		Height: h,
		ldr:    ldr,
	}, nil
}

func (tex *FaceTexture) Square() bool {
	return tex.Width == tex.Height
}

// texel reads the four bytes at (x, y) as a little endian word, which puts
// red in the low byte.
func (tex *FaceTexture) texel(x, y int) Color {
	i := tex.ldr.PixOffset(tex.ldr.Rect.Min.X+x, tex.ldr.Rect.Min.Y+y)
	return Color(binary.LittleEndian.Uint32(tex.ldr.Pix[i : i+4]))
}

// Release drops the pixel buffer. Releasing twice is a no-op.
func (tex *FaceTexture) Release() {
	if tex.ldr != nil {
		tex.ldr.Close()
		tex.ldr = nil
	}
}
