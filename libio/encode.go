package libio

import (
	"errors"
	"fmt"
	goimg "image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type Format int

const (
	FormatBMP = Format(iota)
	FormatPNG
	FormatJPEG
	FormatTIFF
)

var ErrUnknownFormat = errors.New("unknown image format")

func (f Format) String() string {
	switch f {
	case FormatBMP:
		return "bmp"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the encoder for a file name. A trailing .lz4 is
// ignored; the extension before it decides.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == extLz4 {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}

	switch ext {
	case ".bmp":
		return FormatBMP, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return FormatBMP, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
}

func Encode(w io.Writer, img goimg.Image, format Format) error {
	switch format {
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w %v", ErrUnknownFormat, format)
}

// SaveFile encodes img into path, choosing the format from the file name.
// Paths ending in .lz4 are additionally wrapped in an lz4 frame. A partially
// written file is removed on error.
func SaveFile(path string, img goimg.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if !strings.EqualFold(filepath.Ext(path), extLz4) {
		return Encode(file, img, format)
	}

	lzw := lz4.NewWriter(file)
	err = lzw.Apply(lz4.CompressionLevelOption(lz4.Level9))
	if err != nil {
		return err
	}
	err = Encode(lzw, img, format)
	if err != nil {
		return err
	}
	return lzw.Close()
}
