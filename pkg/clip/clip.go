package clip

import (
	"math"
	"sort"

	"github.com/inkline-labs/inkline/pkg/geom"
)

// dedupeEpsilon is the absolute tolerance used to merge coincident
// intersection parameters along a clipped line, the tie-break for
// vertex-grazing intersections.
const dedupeEpsilon = 1e-9

// ClipLineToPolygon clips a single line against polygon, returning the
// sub-segments whose midpoint lies inside the polygon body (outer minus
// holes). Never panics; returns an empty slice for degenerate or
// non-finite input.
func ClipLineToPolygon(line geom.Line, poly geom.Polygon) []geom.Line {
	if !line.IsFinite() || line.IsDegenerate() {
		return nil
	}
	if !poly.HasDistinctPoints() {
		return nil
	}
	bbox, ok := poly.BoundingBox()
	if !ok || bbox.IsZero() {
		return nil
	}

	ts := []float64{0, 1}
	ts = append(ts, ringIntersections(line, poly.Outer)...)
	for _, hole := range poly.Holes {
		ts = append(ts, ringIntersections(line, hole)...)
	}

	ts = dedupeSorted(ts)

	out := make([]geom.Line, 0, len(ts))
	for i := 0; i+1 < len(ts); i++ {
		t0, t1 := ts[i], ts[i+1]
		if t1-t0 < dedupeEpsilon {
			continue
		}
		mid := line.At((t0 + t1) / 2)
		if !PointInBody(poly, mid) {
			continue
		}
		a := line.At(t0)
		b := line.At(t1)
		seg := geom.NewLine(a, b)
		if seg.IsDegenerate() {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// ClipLinesToPolygon clips a batch of lines against polygon. The union of
// the result is the set-theoretic intersection of the input lines with
// the polygon body, modulo epsilon merging of coincident split points.
func ClipLinesToPolygon(lines []geom.Line, poly geom.Polygon) []geom.Line {
	out := make([]geom.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, ClipLineToPolygon(l, poly)...)
	}
	return out
}

// ringIntersections returns the line-parameter t values (in [0,1]) where
// line crosses an edge of ring.
func ringIntersections(line geom.Line, ring geom.Ring) []float64 {
	n := len(ring)
	if n < 2 {
		return nil
	}
	var ts []float64
	dx1 := line.X2 - line.X1
	dy1 := line.Y2 - line.Y1

	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if !a.IsFinite() || !b.IsFinite() {
			continue
		}
		dx2 := b.X - a.X
		dy2 := b.Y - a.Y

		denom := dx1*dy2 - dy1*dx2
		if math.Abs(denom) < 1e-12 {
			continue
		}

		ex := a.X - line.X1
		ey := a.Y - line.Y1

		t := (ex*dy2 - ey*dx2) / denom
		s := (ex*dy1 - ey*dx1) / denom

		if t < -dedupeEpsilon || t > 1+dedupeEpsilon {
			continue
		}
		if s < -dedupeEpsilon || s > 1+dedupeEpsilon {
			continue
		}
		t = clamp01(t)
		ts = append(ts, t)
	}
	return ts
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// dedupeSorted sorts ts and merges values within dedupeEpsilon of each
// other, keeping the first representative of each cluster.
func dedupeSorted(ts []float64) []float64 {
	sort.Float64s(ts)
	out := ts[:0:0]
	for _, t := range ts {
		if len(out) > 0 && t-out[len(out)-1] < dedupeEpsilon {
			continue
		}
		out = append(out, t)
	}
	return out
}
