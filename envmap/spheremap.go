package envmap

import (
	"encoding/binary"
	"image"
	"image/color"

	"spheremap/libio"
)

// Spheremap is the square output image, stored row by row.
type Spheremap struct {
	Size int
	Pix  []Color
}

func NewSpheremap(size int) *Spheremap {
	return &Spheremap{
		Size: size,
		Pix:  make([]Color, size*size),
	}
}

func (sm *Spheremap) ColorModel() color.Model { return color.RGBAModel }

func (sm *Spheremap) Bounds() image.Rectangle { return image.Rect(0, 0, sm.Size, sm.Size) }

func (sm *Spheremap) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(sm.Bounds())) {
		return color.RGBA{}
	}
	return sm.Pix[y*sm.Size+x]
}

func (sm *Spheremap) ColorAt(x, y int) Color {
	return sm.Pix[y*sm.Size+x]
}

func (sm *Spheremap) Set(x, y int, c Color) {
	sm.Pix[y*sm.Size+x] = c
}

// Bytes returns the packed colors as R, G, B, A bytes.
func (sm *Spheremap) Bytes() []byte {
	buf := make([]byte, len(sm.Pix)*4)
	for i, c := range sm.Pix {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(c))
	}
	return buf
}

func (sm *Spheremap) ToIntImage() *libio.IntImage {
	return libio.NewIntImage(sm.Bytes(), 4, sm.Size, sm.Size)
}
