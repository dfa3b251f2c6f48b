package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// gyroidZ is the fixed third-dimension slice used when evaluating the
// gyroid implicit surface for a 2D contour.
const gyroidZ = 0.6

// gyroidValue evaluates sin(x)cos(y) + sin(y)cos(z) + sin(z)cos(x) at the
// fixed slice z = gyroidZ.
func gyroidValue(x, y float64) float64 {
	sz, cz := math.Sin(gyroidZ), math.Cos(gyroidZ)
	return math.Sin(x)*math.Cos(y) + math.Sin(y)*cz + sz*math.Cos(x)
}

// genGyroid marching-squares the z=const slice of the gyroid implicit
// surface over a grid with step spacing/4, after scaling coordinates so
// the surface's natural period is proportional to spacing.
func genGyroid(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	step := spacing / 4
	freq := 2 * math.Pi / (spacing * 4)

	cols := int(math.Ceil(c.Padded.Width()/step)) + 2
	rows := int(math.Ceil(c.Padded.Height()/step)) + 2
	if cols < 2 || rows < 2 {
		return nil
	}

	val := func(gx, gy int) float64 {
		x := (c.Padded.MinX + float64(gx)*step) * freq
		y := (c.Padded.MinY + float64(gy)*step) * freq
		return gyroidValue(x, y)
	}
	point := func(gx, gy int) geom.Point {
		return geom.Point{X: c.Padded.MinX + float64(gx)*step, Y: c.Padded.MinY + float64(gy)*step}
	}

	var out []geom.Line
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			v00 := val(col, row)
			v10 := val(col+1, row)
			v11 := val(col+1, row+1)
			v01 := val(col, row+1)

			p00 := point(col, row)
			p10 := point(col+1, row)
			p11 := point(col+1, row+1)
			p01 := point(col, row+1)

			segs := marchSquareCell(v00, v10, v11, v01, p00, p10, p11, p01)
			for _, seg := range segs {
				a, b := c.Rotate(seg[0]), c.Rotate(seg[1])
				line := geom.NewLine(a, b)
				if !line.IsDegenerate() {
					out = append(out, line)
				}
			}
		}
	}
	return out
}

// marchSquareCell contours a single grid cell with corner values
// v00 (bottom-left), v10 (bottom-right), v11 (top-right), v01 (top-left)
// and matching corner positions, returning zero, one, or two crossing
// segments. Ambiguous saddle cases (5 and 10) resolve by cutting off each
// of the two non-negative corners on its own, as if the cell center were
// negative: a fixed, arbitrary tie-break rather than an asymptotic
// decision.
func marchSquareCell(v00, v10, v11, v01 float64, p00, p10, p11, p01 geom.Point) [][2]geom.Point {
	bit := func(v float64) int {
		if v >= 0 {
			return 1
		}
		return 0
	}
	idx := bit(v00) | bit(v10)<<1 | bit(v11)<<2 | bit(v01)<<3

	lerp := func(pa, pb geom.Point, va, vb float64) geom.Point {
		if va == vb {
			return pa
		}
		t := -va / (vb - va)
		return geom.Point{X: pa.X + t*(pb.X-pa.X), Y: pa.Y + t*(pb.Y-pa.Y)}
	}

	eBottom := func() geom.Point { return lerp(p00, p10, v00, v10) }
	eRight := func() geom.Point { return lerp(p10, p11, v10, v11) }
	eTop := func() geom.Point { return lerp(p01, p11, v01, v11) }
	eLeft := func() geom.Point { return lerp(p00, p01, v00, v01) }

	switch idx {
	case 0, 15:
		return nil
	case 1, 14:
		return [][2]geom.Point{{eLeft(), eBottom()}}
	case 2, 13:
		return [][2]geom.Point{{eBottom(), eRight()}}
	case 3, 12:
		return [][2]geom.Point{{eLeft(), eRight()}}
	case 4, 11:
		return [][2]geom.Point{{eRight(), eTop()}}
	case 6, 9:
		return [][2]geom.Point{{eBottom(), eTop()}}
	case 7, 8:
		return [][2]geom.Point{{eLeft(), eTop()}}
	case 5:
		return [][2]geom.Point{{eLeft(), eBottom()}, {eRight(), eTop()}}
	case 10:
		return [][2]geom.Point{{eBottom(), eRight()}, {eTop(), eLeft()}}
	}
	return nil
}
