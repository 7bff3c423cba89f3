package envmap

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"spheremap/libio"
)

// FaceLoader decodes the image file at path.
type FaceLoader func(path string) (*libio.RgbaLdr, error)

type LoadOptions struct {
	// Loader defaults to libio.LoadFile.
	Loader FaceLoader
	// RequireUniformSize rejects cube maps whose faces differ in size.
	RequireUniformSize bool
}

// Cubemap holds the six face textures of an environment.
type Cubemap struct {
	faces [NumFaces]*FaceTexture
}

// FacePath returns the file name of a face, {prefix}_{suffix}.{extension}.
func FacePath(prefix, extension string, face CubeFace) string {
	return prefix + "_" + face.Suffix() + "." + extension
}

// LoadCubemap loads the six faces of prefix in face order and stops at the
// first one that fails.
func LoadCubemap(prefix, extension string, opts LoadOptions) (cube *Cubemap, err error) {
	loader := opts.Loader
	if loader == nil {
		loader = libio.LoadFile
	}

	var faces [NumFaces]*FaceTexture
	defer func() {
		if err != nil {
			releaseFaces(&faces)
		}
	}()

	for face := FacePositiveX; face <= FaceNegativeZ; face++ {
		path := FacePath(prefix, extension, face)

		ldr, lerr := loader(path)
		if lerr != nil {
			return nil, &LoadError{Face: face, Path: path, Err: lerr}
		}

		tex, lerr := NewFaceTexture(face, ldr)
		if lerr != nil {
			if ldr != nil {
				ldr.Close()
			}
			return nil, withPath(lerr, path)
		}
		faces[face] = tex

		if lerr := checkFace(face, tex, faces[FacePositiveX], opts.RequireUniformSize); lerr != nil {
			return nil, withPath(lerr, path)
		}

		Logger().Debug("loaded cube face", "face", face, "path", path, "width", tex.Width, "height", tex.Height)
	}

	return &Cubemap{faces: faces}, nil
}

// NewCubemap builds a cube map from already decoded faces. The faces must be
// present and square, their sizes may differ.
func NewCubemap(faces [NumFaces]*FaceTexture) (*Cubemap, error) {
	for face := FacePositiveX; face <= FaceNegativeZ; face++ {
		if faces[face] == nil {
			return nil, &LoadError{Face: face, Err: errNoPixels}
		}
		if err := checkFace(face, faces[face], faces[FacePositiveX], false); err != nil {
			return nil, err
		}
	}
	return &Cubemap{faces: faces}, nil
}

func checkFace(face CubeFace, tex, ref *FaceTexture, uniform bool) error {
	if !tex.Square() {
		return &LoadError{Face: face, Err: fmt.Errorf("face is not square: %dx%d", tex.Width, tex.Height)}
	}
	if uniform && (tex.Width != ref.Width || tex.Height != ref.Height) {
		return &LoadError{Face: face, Err: fmt.Errorf("face size %dx%d doesn't match %v face size %dx%d",
			tex.Width, tex.Height, FacePositiveX, ref.Width, ref.Height)}
	}
	return nil
}

func withPath(err error, path string) error {
	if le, ok := err.(*LoadError); ok {
		le.Path = path
	}
	return err
}

func releaseFaces(faces *[NumFaces]*FaceTexture) {
	for i, tex := range faces {
		if tex != nil {
			tex.Release()
			faces[i] = nil
		}
	}
}

func (cube *Cubemap) Face(face CubeFace) *FaceTexture {
	if !face.Valid() {
		panic(contractViolation("invalid cube face %d", int(face)))
	}
	return cube.faces[face]
}

// ReadTexel returns the texel at (x, y) of face. Coordinates outside the
// face panic.
func (cube *Cubemap) ReadTexel(face CubeFace, x, y int) Color {
	tex := cube.Face(face)
	if x < 0 || x >= tex.Width || y < 0 || y >= tex.Height {
		panic(contractViolation("texel (%d, %d) outside of %v face %dx%d", x, y, face, tex.Width, tex.Height))
	}
	return tex.texel(x, y)
}

// SampleFace point samples face at s, t in [0,1].
func (cube *Cubemap) SampleFace(face CubeFace, s, t float32) Color {
	tex := cube.Face(face)
	x := min(int(math32.Floor(s*float32(tex.Width))), tex.Width-1)
	y := min(int(math32.Floor(t*float32(tex.Height))), tex.Height-1)
	return cube.ReadTexel(face, x, y)
}

func (cube *Cubemap) ResolveDirection(dir mgl32.Vec3) FaceTexCoord {
	return ResolveDirection(dir)
}

// Sample returns the texel seen along dir.
func (cube *Cubemap) Sample(dir mgl32.Vec3) Color {
	tc := ResolveDirection(dir)
	return cube.SampleFace(tc.Face, tc.S, tc.T)
}

// Release drops all face textures. The cube map must not be sampled afterwards.
func (cube *Cubemap) Release() {
	releaseFaces(&cube.faces)
}

// ResolveDirection finds the face dir points at and the position on it.
// dir does not need to be normalized, but must not be zero.
//
// Cube map face reference: https://www.khronos.org/opengl/wiki_opengl/images/CubeMapAxes.png
func ResolveDirection(dir mgl32.Vec3) FaceTexCoord {
	x, y, z := dir[0], dir[1], dir[2]
	a := [3]float32{math32.Abs(x), math32.Abs(y), math32.Abs(z)}

	// ties go to the lower axis
	var axis int
	switch {
	case a[0] >= a[1] && a[0] >= a[2]:
		axis = 0
	case a[1] >= a[0] && a[1] >= a[2]:
		axis = 1
	case a[2] >= a[0] && a[2] >= a[1]:
		axis = 2
	default:
		panic(contractViolation("direction %v has no major axis", dir))
	}

	m := a[axis]
	if m == 0 {
		panic(contractViolation("zero direction"))
	}

	face := CubeFace(axis * 2)
	if dir[axis] < 0 {
		face++
	}

	var ts, tt float32
	switch face {
	case FacePositiveX:
		ts, tt = -z, -y
	case FaceNegativeX:
		ts, tt = z, -y
	case FacePositiveY:
		ts, tt = x, z
	case FaceNegativeY:
		ts, tt = x, -z
	case FacePositiveZ:
		ts, tt = x, -y
	case FaceNegativeZ:
		ts, tt = -x, -y
	}

	return FaceTexCoord{
		Face: face,
		S:    0.5 * (ts/m + 1),
		T:    0.5 * (tt/m + 1),
	}
}
