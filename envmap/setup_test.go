package envmap_test

import (
	"image"
	"testing"

	"spheremap/envmap"
	"spheremap/libio"
)

// distinct solid colors, one per face
var faceColors = [envmap.NumFaces][3]uint8{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{0, 255, 255},
	{255, 0, 255},
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newLdr(w, h int, fill func(x, y int) [3]uint8) *libio.RgbaLdr {
	ldr := libio.NewRgbaLdr(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fill(x, y)
			i := ldr.PixOffset(x, y)
			ldr.Pix[i+0] = c[0]
			ldr.Pix[i+1] = c[1]
			ldr.Pix[i+2] = c[2]
			ldr.Pix[i+3] = 0xff
		}
	}
	return ldr
}

func solidLdr(size int, c [3]uint8) *libio.RgbaLdr {
	return newLdr(size, size, func(x, y int) [3]uint8 { return c })
}

// checkerLdr alternates black and white cells of cell×cell texels.
func checkerLdr(size, cell int) *libio.RgbaLdr {
	return newLdr(size, size, func(x, y int) [3]uint8 {
		if (x/cell+y/cell)%2 == 0 {
			return [3]uint8{0, 0, 0}
		}
		return [3]uint8{255, 255, 255}
	})
}

// coordLdr stores the texel coordinates and face in the color channels.
func coordLdr(size int, face envmap.CubeFace) *libio.RgbaLdr {
	return newLdr(size, size, func(x, y int) [3]uint8 {
		return [3]uint8{uint8(x), uint8(y), uint8(face)}
	})
}

func buildCubemap(t testing.TB, faceLdr func(face envmap.CubeFace) *libio.RgbaLdr) *envmap.Cubemap {
	t.Helper()
	var faces [envmap.NumFaces]*envmap.FaceTexture
	for face := envmap.FacePositiveX; face <= envmap.FaceNegativeZ; face++ {
		tex, err := envmap.NewFaceTexture(face, faceLdr(face))
		if err != nil {
			t.Fatal(err)
		}
		faces[face] = tex
	}
	cube, err := envmap.NewCubemap(faces)
	if err != nil {
		t.Fatal(err)
	}
	return cube
}

func solidCubemap(t testing.TB, size int) *envmap.Cubemap {
	return buildCubemap(t, func(face envmap.CubeFace) *libio.RgbaLdr {
		return solidLdr(size, faceColors[face])
	})
}

func checkerCubemap(t testing.TB, size, cell int) *envmap.Cubemap {
	return buildCubemap(t, func(face envmap.CubeFace) *libio.RgbaLdr {
		return checkerLdr(size, cell)
	})
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}
