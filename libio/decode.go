package libio

import (
	"bytes"
	"errors"
	"fmt"
	goimg "image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const extLz4 = ".lz4"

var ErrEmptyImage = errors.New("image has zero size")

// RgbaLdr is a decoded image with exactly four 8 bit channels.
type RgbaLdr struct {
	// Pix holds the image's pixels, in R, G, B, A order and not alpha
	// premultiplied. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect goimg.Rectangle
	// Format is the name of the codec the image was decoded with.
	Format string
}

// NewRgbaLdr allocates a zeroed image with the given bounds.
func NewRgbaLdr(r goimg.Rectangle) *RgbaLdr {
	return &RgbaLdr{
		Pix:    make([]uint8, r.Dx()*r.Dy()*4),
		Stride: r.Dx() * 4,
		Rect:   r,
	}
}

func (p *RgbaLdr) ColorModel() color.Model { return color.NRGBAModel }

func (p *RgbaLdr) Bounds() goimg.Rectangle { return p.Rect }

func (p *RgbaLdr) At(x, y int) color.Color {
	if p.Pix == nil || !(goimg.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	return color.NRGBA{R: p.Pix[i+0], G: p.Pix[i+1], B: p.Pix[i+2], A: p.Pix[i+3]}
}

// Close drops the pixel buffer. The image must not be used afterwards.
func (p *RgbaLdr) Close() error {
	p.Pix = nil
	return nil
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *RgbaLdr) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

// Load decodes any registered image format into four channels.
func Load(r io.Reader) (*RgbaLdr, error) {
	img, format, err := goimg.Decode(r)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}

	// decoders already producing tightly packed NRGBA can be used in place
	if nrgba, ok := img.(*goimg.NRGBA); ok && nrgba.Stride == b.Dx()*4 {
		return &RgbaLdr{
			Pix:    nrgba.Pix,
			Stride: nrgba.Stride,
			Rect:   b,
			Format: format,
		}, nil
	}

	ldr := NewRgbaLdr(goimg.Rect(0, 0, b.Dx(), b.Dy()))
	ldr.Format = format
	dst := &goimg.NRGBA{Pix: ldr.Pix, Stride: ldr.Stride, Rect: ldr.Rect}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)

	return ldr, nil
}

func LoadBytes(b []byte) (*RgbaLdr, error) {
	return Load(bytes.NewReader(b))
}

// LoadFile decodes the image at path. Files ending in .lz4 are read through
// an lz4 frame reader first.
func LoadFile(path string) (*RgbaLdr, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var src io.Reader = file
	if strings.EqualFold(filepath.Ext(path), extLz4) {
		src = lz4.NewReader(file)
	}

	return Load(src)
}
