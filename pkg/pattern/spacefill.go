package pattern

import (
	"math"
	"strings"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// genHilbert draws a Hilbert curve at a recursion depth chosen so the
// curve's grid step length is approximately spacing, scaled to the
// polygon's bounding box and clipped to the polygon.
func genHilbert(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	span := math.Max(c.BBox.Width(), c.BBox.Height())
	if span <= 0 {
		return nil
	}
	order := hilbertOrder(span, spacing)
	side := 1 << order // grid cells per axis
	n := side * side

	cell := span / float64(side)
	originX := c.BBox.MinX
	originY := c.BBox.MinY

	var out []geom.Line
	var prev geom.Point
	have := false
	for d := 0; d < n; d++ {
		gx, gy := hilbertD2XY(side, d)
		pt := geom.Point{
			X: originX + (float64(gx)+0.5)*cell,
			Y: originY + (float64(gy)+0.5)*cell,
		}
		pt = c.Rotate(pt)
		if have {
			seg := geom.NewLine(prev, pt)
			if !seg.IsDegenerate() {
				out = append(out, seg)
			}
		}
		prev = pt
		have = true
	}
	return out
}

// hilbertOrder picks the smallest recursion depth whose grid step
// (span / 2^order) is at or below spacing, bounded to keep 4^order cells
// tractable.
func hilbertOrder(span, spacing float64) int {
	if spacing <= 0 {
		spacing = span / 16
	}
	order := int(math.Ceil(math.Log2(span / spacing)))
	if order < 1 {
		order = 1
	}
	if order > 7 {
		order = 7
	}
	return order
}

// hilbertD2XY converts a distance d along a Hilbert curve of side `order`
// (a power of two) into grid coordinates, via the standard bit-rotation
// construction.
func hilbertD2XY(order, d int) (x, y int) {
	t := d
	for s := 1; s < order; s *= 2 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = hilbertRotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}

func hilbertRotate(n, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// peanoAxiom and peanoRules define the classic order-3 Peano space-filling
// curve as an L-system: F moves forward one grid unit, + / - turn 90°,
// and L / R are non-terminal symbols consumed only during expansion.
const peanoAxiom = "L"

var peanoRules = map[byte]string{
	'L': "LFRFL+F+RFLFR-F-LFRFL",
	'R': "RFLFR-F-LFRFL+F+RFLFR",
}

// genPeano draws a Peano curve at a recursion depth chosen so the curve's
// grid step is approximately spacing.
func genPeano(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	span := math.Max(c.BBox.Width(), c.BBox.Height())
	if span <= 0 {
		return nil
	}
	depth := peanoDepth(span, spacing)
	path := expandLSystem(peanoAxiom, peanoRules, depth)

	side := intPow(3, depth)
	cell := span / float64(side)
	originX := c.BBox.MinX
	originY := c.BBox.MinY

	gx, gy := 0, 0
	dir := 0 // 0=+x, 1=+y, 2=-x, 3=-y
	dx := [4]int{1, 0, -1, 0}
	dy := [4]int{0, 1, 0, -1}

	var out []geom.Line
	prev := geom.Point{X: originX + 0.5*cell, Y: originY + 0.5*cell}
	prev = c.Rotate(prev)
	for _, ch := range path {
		switch ch {
		case 'F':
			gx += dx[dir]
			gy += dy[dir]
			pt := geom.Point{
				X: originX + (float64(gx)+0.5)*cell,
				Y: originY + (float64(gy)+0.5)*cell,
			}
			pt = c.Rotate(pt)
			seg := geom.NewLine(prev, pt)
			if !seg.IsDegenerate() {
				out = append(out, seg)
			}
			prev = pt
		case '+':
			dir = (dir + 1) % 4
		case '-':
			dir = (dir + 3) % 4
		}
	}
	return out
}

// peanoDepth picks the smallest recursion depth whose grid step
// (span / 3^depth) is at or below spacing, bounded to keep 3^(2*depth)
// cells tractable.
func peanoDepth(span, spacing float64) int {
	if spacing <= 0 {
		spacing = span / 9
	}
	depth := int(math.Ceil(math.Log(span/spacing) / math.Log(3)))
	if depth < 1 {
		depth = 1
	}
	if depth > 5 {
		depth = 5
	}
	return depth
}

func expandLSystem(axiom string, rules map[byte]string, n int) string {
	cur := axiom
	for i := 0; i < n; i++ {
		var sb strings.Builder
		for j := 0; j < len(cur); j++ {
			ch := cur[j]
			if rule, ok := rules[ch]; ok {
				sb.WriteString(rule)
			} else {
				sb.WriteByte(ch)
			}
		}
		cur = sb.String()
	}
	return cur
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
