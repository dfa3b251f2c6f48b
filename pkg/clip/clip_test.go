package clip_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/inkline-labs/inkline/pkg/clip"
	"github.com/inkline-labs/inkline/pkg/geom"
)

func rectRing(minX, minY, maxX, maxY float64) geom.Ring {
	return geom.Ring{
		{X: minX, Y: minY}, {X: maxX, Y: minY},
		{X: maxX, Y: maxY}, {X: minX, Y: maxY},
	}
}

func TestPointInPolygonBasic(t *testing.T) {
	ring := rectRing(0, 0, 10, 10)
	if !clip.PointInPolygon(5, 5, ring) {
		t.Fatal("expected center point to be inside")
	}
	if clip.PointInPolygon(20, 20, ring) {
		t.Fatal("expected far point to be outside")
	}
}

func TestPointInBodyExcludesHoles(t *testing.T) {
	poly := geom.Polygon{
		Outer: rectRing(0, 0, 10, 10),
		Holes: []geom.Ring{rectRing(4, 4, 6, 6)},
	}
	if clip.PointInBody(poly, geom.Point{X: 5, Y: 5}) {
		t.Fatal("expected point inside hole to be excluded")
	}
	if !clip.PointInBody(poly, geom.Point{X: 1, Y: 1}) {
		t.Fatal("expected point outside hole but inside outer ring to be included")
	}
}

func TestClipLineToPolygonUnitSquare(t *testing.T) {
	poly := geom.Polygon{Outer: rectRing(0, 0, 100, 100)}
	line := geom.NewLine(geom.Point{X: -50, Y: 50}, geom.Point{X: 150, Y: 50})

	segs := clip.ClipLineToPolygon(line, poly)
	if len(segs) != 1 {
		t.Fatalf("expected a single clipped segment, got %d: %+v", len(segs), segs)
	}
	seg := segs[0]
	if math.Abs(seg.Length()-100) > 1e-6 {
		t.Fatalf("expected clipped segment length 100, got %f", seg.Length())
	}
}

func TestClipLineEntirelyOutsideYieldsNothing(t *testing.T) {
	poly := geom.Polygon{Outer: rectRing(0, 0, 10, 10)}
	line := geom.NewLine(geom.Point{X: 100, Y: 100}, geom.Point{X: 200, Y: 200})
	segs := clip.ClipLineToPolygon(line, poly)
	if len(segs) != 0 {
		t.Fatalf("expected no segments for a line entirely outside the polygon, got %d", len(segs))
	}
}

func TestClipDegenerateInputsAreEmpty(t *testing.T) {
	poly := geom.Polygon{Outer: rectRing(0, 0, 10, 10)}
	zeroLine := geom.NewLine(geom.Point{X: 5, Y: 5}, geom.Point{X: 5, Y: 5})
	if segs := clip.ClipLineToPolygon(zeroLine, poly); len(segs) != 0 {
		t.Fatalf("expected degenerate line to clip to nothing, got %d", len(segs))
	}

	tinyPoly := geom.Polygon{Outer: geom.Ring{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	line := geom.NewLine(geom.Point{X: -10, Y: 0}, geom.Point{X: 10, Y: 0})
	if segs := clip.ClipLineToPolygon(line, tinyPoly); len(segs) != 0 {
		t.Fatalf("expected sub-triangle polygon to clip to nothing, got %d", len(segs))
	}
}

// A query ray grazing vertices must not double-count crossings: points
// level with a diamond's left/right vertices are classified correctly on
// both sides.
func TestPointInPolygonVertexGrazing(t *testing.T) {
	diamond := geom.Ring{{X: 0, Y: 5}, {X: 5, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 10}}

	if !clip.PointInPolygon(5, 5, diamond) {
		t.Fatal("center of diamond should be inside")
	}
	// Same height as the left and right vertices, outside to the left.
	if clip.PointInPolygon(-5, 5, diamond) {
		t.Fatal("point left of the diamond, level with its vertices, should be outside")
	}
	// Same height, inside near the left vertex.
	if !clip.PointInPolygon(1, 5, diamond) {
		t.Fatal("point just inside the left vertex should be inside")
	}
}

// Horizontal polygon edges are the classic ray-casting trap: the +x ray
// runs parallel to them. Points above, below, and level with a horizontal
// edge must classify correctly.
func TestPointInPolygonHorizontalEdges(t *testing.T) {
	// An L-shape with three horizontal edges at y=0, y=5, y=10.
	ell := geom.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5},
		{X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}

	cases := []struct {
		x, y float64
		in   bool
	}{
		{2, 2, true},    // lower arm
		{2, 8, true},    // upper arm
		{8, 8, false},   // notch removed by the step
		{8, 2, true},    // lower-right of the L
		{12, 5, false},  // right of everything, level with the middle edge
		{-2, 5, false},  // left of everything, level with the middle edge
		{2, 5, true},    // inside, level with the middle horizontal edge
	}
	for _, tc := range cases {
		if got := clip.PointInPolygon(tc.x, tc.y, ell); got != tc.in {
			t.Errorf("(%g,%g): got %v, want %v", tc.x, tc.y, got, tc.in)
		}
	}
}

// A clip line colinear with a polygon edge: the parallel edge contributes
// no intersections, and the neighboring edges decide the overlap. The
// result must still be midpoint-inside segments only, never a panic.
func TestClipLineColinearWithEdge(t *testing.T) {
	poly := geom.Polygon{Outer: rectRing(0, 0, 100, 100)}

	// Runs along the interior line y=50, extending past both sides.
	inside := geom.NewLine(geom.Point{X: -20, Y: 50}, geom.Point{X: 120, Y: 50})
	segs := clip.ClipLineToPolygon(inside, poly)
	var total float64
	for _, s := range segs {
		total += s.Length()
		if !clip.PointInBody(poly, s.Midpoint()) {
			t.Fatalf("colinear clip emitted a segment outside the body: %+v", s)
		}
	}
	if math.Abs(total-100) > 1e-6 {
		t.Fatalf("expected 100 units inside along y=50, got %f", total)
	}

	// Exactly along the bottom edge y=0: boundary classification is
	// unspecified, but the call must not panic and every emitted segment
	// must still pass the midpoint test it was admitted under.
	along := geom.NewLine(geom.Point{X: -20, Y: 0}, geom.Point{X: 120, Y: 0})
	for _, s := range clip.ClipLineToPolygon(along, poly) {
		if !clip.PointInBody(poly, s.Midpoint()) {
			t.Fatalf("edge-colinear clip emitted a non-interior segment: %+v", s)
		}
	}
}

func TestClipContainmentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		minX := rapid.Float64Range(-50, 0).Draw(t, "minX")
		minY := rapid.Float64Range(-50, 0).Draw(t, "minY")
		width := rapid.Float64Range(1, 100).Draw(t, "width")
		height := rapid.Float64Range(1, 100).Draw(t, "height")
		poly := geom.Polygon{Outer: rectRing(minX, minY, minX+width, minY+height)}

		x1 := rapid.Float64Range(-100, 100).Draw(t, "x1")
		y1 := rapid.Float64Range(-100, 100).Draw(t, "y1")
		x2 := rapid.Float64Range(-100, 100).Draw(t, "x2")
		y2 := rapid.Float64Range(-100, 100).Draw(t, "y2")
		line := geom.NewLine(geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})

		for _, seg := range clip.ClipLineToPolygon(line, poly) {
			if !clip.PointInBody(poly, seg.Midpoint()) {
				t.Fatalf("clipped segment midpoint %+v not inside polygon %+v", seg.Midpoint(), poly.Outer)
			}
		}
	})
}

func TestClipIdempotenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		poly := geom.Polygon{Outer: rectRing(0, 0,
			rapid.Float64Range(10, 100).Draw(t, "w"),
			rapid.Float64Range(10, 100).Draw(t, "h"))}

		x1 := rapid.Float64Range(-50, 150).Draw(t, "x1")
		y1 := rapid.Float64Range(-50, 150).Draw(t, "y1")
		x2 := rapid.Float64Range(-50, 150).Draw(t, "x2")
		y2 := rapid.Float64Range(-50, 150).Draw(t, "y2")
		lines := []geom.Line{geom.NewLine(geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})}

		once := clip.ClipLinesToPolygon(lines, poly)
		twice := clip.ClipLinesToPolygon(once, poly)

		var onceLen, twiceLen float64
		for _, l := range once {
			onceLen += l.Length()
		}
		for _, l := range twice {
			twiceLen += l.Length()
		}
		if math.Abs(onceLen-twiceLen) > 1e-6 {
			t.Fatalf("clip not idempotent: once=%f twice=%f", onceLen, twiceLen)
		}
	})
}

func TestWindingInsensitivityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.Float64Range(10, 100).Draw(t, "w")
		h := rapid.Float64Range(10, 100).Draw(t, "h")
		ring := rectRing(0, 0, w, h)
		reversed := ring.Reversed()

		px := rapid.Float64Range(-20, w+20).Draw(t, "px")
		py := rapid.Float64Range(-20, h+20).Draw(t, "py")

		// Stay away from the boundary, where the rule deliberately leaves
		// the result unspecified.
		const margin = 0.01
		if math.Abs(px) < margin || math.Abs(px-w) < margin ||
			math.Abs(py) < margin || math.Abs(py-h) < margin {
			return
		}

		if got, want := clip.PointInPolygon(px, py, ring), clip.PointInPolygon(px, py, reversed); got != want {
			t.Fatalf("winding sensitivity at (%f,%f): ring=%v reversed=%v", px, py, got, want)
		}
	})
}
