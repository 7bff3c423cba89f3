package envmap

// Color is a packed texel: bits 0-7 red, 8-15 green, 16-23 blue, 24-31 alpha.
type Color uint32

const opaque = Color(0xff) << 24

func MakeColor(r, g, b uint8) Color {
	return Color(r) | Color(g)<<8 | Color(b)<<16 | opaque
}

func SplitColor(c Color) (r, g, b uint8) {
	return uint8(c >> 0), uint8(c >> 8), uint8(c >> 16)
}

func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// RGBA implements color.Color. The stored channels are not premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := SplitColor(c)
	a = uint32(c.Alpha())
	a |= a << 8
	r = uint32(cr)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(cg)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(cb)
	b |= b << 8
	b = b * a / 0xffff
	return
}

// AverageChannel divides an accumulated channel sum by the sample count,
// truncating.
func AverageChannel(sum, samples uint32) uint8 {
	return uint8(sum / samples)
}
