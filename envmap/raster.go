package envmap

import (
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// Offset is a sub-pixel sample position in units of output pixels.
type Offset struct {
	X, Y float32
}

var patternNone = [...]Offset{{0, 0}}

// rotated grid
var pattern5x = [...]Offset{
	{0.0, 0.0},
	{-.1875, -.375},
	{0.375, -.1875},
	{0.1875, 0.375},
	{-.375, 0.1875},
}

// PatternForSamples returns a copy of the offset table for the given number
// of anti-aliasing samples. Only 1 and 5 are supported.
func PatternForSamples(samples int) ([]Offset, error) {
	switch samples {
	case 1:
		return append([]Offset(nil), patternNone[:]...), nil
	case 5:
		return append([]Offset(nil), pattern5x[:]...), nil
	}
	return nil, &ConfigError{Option: "aa", Value: strconv.Itoa(samples), Reason: "sample count must be 1 or 5"}
}

type RasterOptions struct {
	// Samples is the number of anti-aliasing samples per pixel, 1 or 5.
	Samples int
	// Workers bounds the number of rows rendered at once. Zero or less uses
	// one worker per CPU.
	Workers int
}

// Rasterizer renders spheremaps from cube maps.
type Rasterizer struct {
	pattern []Offset
	workers int
}

func NewRasterizer(opts RasterOptions) (*Rasterizer, error) {
	pattern, err := PatternForSamples(opts.Samples)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Rasterizer{
		pattern: pattern,
		workers: workers,
	}, nil
}

func (r *Rasterizer) Samples() int {
	return len(r.pattern)
}

func (r *Rasterizer) Workers() int {
	return r.workers
}

// Render fills a size×size spheremap from cube. Rows are independent, so
// the result does not depend on the number of workers.
func (r *Rasterizer) Render(cube *Cubemap, size int) (*Spheremap, error) {
	if size <= 0 {
		return nil, &ConfigError{Option: "size", Value: strconv.Itoa(size), Reason: "must be positive"}
	}

	start := time.Now()
	sm := NewSpheremap(size)

	var g errgroup.Group
	g.SetLimit(r.workers)
	for py := 0; py < size; py++ {
		py := py
		g.Go(func() error {
			row := sm.Pix[py*size : (py+1)*size]
			for px := range row {
				row[px] = r.Pixel(cube, px, py, size)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	Logger().Debug("rendered spheremap", "size", size, "samples", r.Samples(), "workers", r.workers, "took", time.Since(start))

	return sm, nil
}

// Pixel computes the color of output pixel (px, py) of a size×size spheremap.
func (r *Rasterizer) Pixel(cube *Cubemap, px, py, size int) Color {
	pixelSize := 1 / float32(size)
	centerS := unlerp(px, size)
	centerT := unlerp(py, size)

	var sr, sg, sb uint32
	for _, o := range r.pattern {
		s := centerS + float32(o.X*pixelSize)
		t := centerT + float32(o.Y*pixelSize)

		cr, cg, cb := SplitColor(cube.Sample(ParaboloidDirection(s, t)))
		sr += uint32(cr)
		sg += uint32(cg)
		sb += uint32(cb)
	}

	k := uint32(len(r.pattern))
	return MakeColor(AverageChannel(sr, k), AverageChannel(sg, k), AverageChannel(sb, k))
}

// unlerp maps a pixel index to the normalized position of its center.
func unlerp(val, size int) float32 {
	return (float32(val) + 0.5) / float32(size)
}
