package clip

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
)

// PointInPolygon classifies (px, py) against ring using ray-crossing: a
// ray is cast in +x from the query point and edges are counted using the
// "upward edges include their lower endpoint, exclude their upper" rule,
// which avoids double-counting vertex crossings without special-casing
// them. Points exactly on an edge are classified consistently but the
// inside/outside result at the boundary is not guaranteed either way.
func PointInPolygon(px, py float64, ring geom.Ring) bool {
	if math.IsNaN(px) || math.IsNaN(py) || math.IsInf(px, 0) || math.IsInf(py, 0) {
		return false
	}
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := ring[i], ring[j]
		if !vi.IsFinite() || !vj.IsFinite() {
			j = i
			continue
		}
		if (vi.Y > py) != (vj.Y > py) {
			xInt := (vj.X-vi.X)*(py-vi.Y)/(vj.Y-vi.Y) + vi.X
			if px < xInt {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PointInBody reports whether p lies inside the polygon's outer ring and
// outside every hole.
func PointInBody(p geom.Polygon, pt geom.Point) bool {
	if !pt.IsFinite() {
		return false
	}
	if !PointInPolygon(pt.X, pt.Y, p.Outer) {
		return false
	}
	for _, hole := range p.Holes {
		if PointInPolygon(pt.X, pt.Y, hole) {
			return false
		}
	}
	return true
}
