package envmap

import "fmt"

type CubeFace int

// Face codes follow the GL cube map order.
const (
	FacePositiveX = CubeFace(iota)
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

const NumFaces = 6

var faceSuffixes = [NumFaces]string{
	FacePositiveX: "right",
	FaceNegativeX: "left",
	FacePositiveY: "top",
	FaceNegativeY: "bottom",
	FacePositiveZ: "front",
	FaceNegativeZ: "back",
}

var faceNames = [NumFaces]string{
	FacePositiveX: "+X",
	FaceNegativeX: "-X",
	FacePositiveY: "+Y",
	FaceNegativeY: "-Y",
	FacePositiveZ: "+Z",
	FaceNegativeZ: "-Z",
}

func (f CubeFace) Valid() bool {
	return f >= FacePositiveX && f <= FaceNegativeZ
}

// Suffix is the file name suffix of the face, e.g. "right" for +X.
func (f CubeFace) Suffix() string {
	if !f.Valid() {
		return ""
	}
	return faceSuffixes[f]
}

func (f CubeFace) String() string {
	if !f.Valid() {
		return fmt.Sprintf("CubeFace(%d)", int(f))
	}
	return faceNames[f]
}

// FaceTexCoord addresses a point on a cube face, S and T are in [0,1].
type FaceTexCoord struct {
	Face CubeFace
	S, T float32
}
