package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// genConcentric draws successive inward miter-offsets of the polygon's
// outer ring at k*spacing for k=1,2,..., stopping once an offset
// degenerates (its area collapses toward zero or inverts relative to the
// original ring, the tell-tale sign of self-intersection on a concave or
// narrow shape).
func genConcentric(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	outer := c.Polygon.Outer
	if len(outer) < 3 {
		return nil
	}
	originalArea := math.Abs(outer.SignedArea())
	if originalArea < 1e-9 {
		return nil
	}

	const maxRings = 2000
	areaFloor := spacing * spacing * 0.01

	var out []geom.Line
	for k := 1; k <= maxRings; k++ {
		ring, ok := offsetRing(outer, float64(k)*spacing)
		if !ok {
			break
		}
		area := math.Abs(ring.SignedArea())
		if area < areaFloor || area > originalArea {
			break
		}
		out = append(out, ringLines(ring)...)
	}
	return out
}

func ringLines(ring geom.Ring) []geom.Line {
	n := len(ring)
	out := make([]geom.Line, 0, n)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		seg := geom.NewLine(a, b)
		if !seg.IsDegenerate() {
			out = append(out, seg)
		}
	}
	return out
}

// offsetRing computes a miter offset of ring inward by distance, via
// per-edge normal translation followed by consecutive-edge intersection
// to rebuild each vertex. Returns false if the ring is too small to offset
// meaningfully.
func offsetRing(ring geom.Ring, distance float64) (geom.Ring, bool) {
	n := len(ring)
	if n < 3 {
		return nil, false
	}
	cw := ring.IsClockwise()

	type offsetEdge struct {
		a, b geom.Point
	}
	edges := make([]offsetEdge, n)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := math.Hypot(dx, dy)
		if length < 1e-12 {
			edges[i] = offsetEdge{a, b}
			continue
		}
		ux, uy := dx/length, dy/length
		var nx, ny float64
		if cw {
			nx, ny = uy, -ux
		} else {
			nx, ny = -uy, ux
		}
		edges[i] = offsetEdge{
			a: geom.Point{X: a.X + nx*distance, Y: a.Y + ny*distance},
			b: geom.Point{X: b.X + nx*distance, Y: b.Y + ny*distance},
		}
	}

	newRing := make(geom.Ring, n)
	for i := 0; i < n; i++ {
		prev := edges[(i-1+n)%n]
		cur := edges[i]
		pt, ok := intersectInfiniteLines(prev.a, prev.b, cur.a, cur.b)
		if !ok {
			pt = cur.a
		}
		newRing[i] = pt
	}
	return newRing, true
}

// intersectInfiniteLines finds the intersection of the infinite lines
// through (p1,p2) and (p3,p4). Returns false for parallel lines.
func intersectInfiniteLines(p1, p2, p3, p4 geom.Point) (geom.Point, bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return geom.Point{}, false
	}
	t := ((p3.X-p1.X)*d2y - (p3.Y-p1.Y)*d2x) / denom
	return geom.Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}
