package envmap

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// positions outside the paraboloid disk look straight back
var backPole = mgl32.Vec3{0, 0, -1}

// ParaboloidDirection maps the spheremap position s, t in [0,1] to the
// viewing direction it encodes. The result is not normalized.
func ParaboloidDirection(s, t float32) mgl32.Vec3 {
	// the float32 conversions keep every product rounded on targets with fused multiply-add
	q := s - float32(s*s) + t - float32(t*t)

	p := float32(16*q) - 4
	if p < 0 {
		return backPole
	}

	r := math32.Sqrt(p)
	return mgl32.Vec3{
		r * (2*s - 1),
		r * -(2*t - 1),
		float32(8*q) - 3,
	}
}
