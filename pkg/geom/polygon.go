package geom

import "math"

// Ring is an ordered sequence of points describing a closed boundary.
// Closure is implicit: the edge from the last point back to the first
// exists even if the caller did not duplicate the first point at the end.
type Ring []Point

// Polygon is a simple closed outer boundary plus zero or more holes.
// Polygons are constructed once by a caller and are treated as immutable
// by every downstream stage; multiple polygons may be processed
// concurrently without coordination.
type Polygon struct {
	ID    string  `json:"id,omitempty" yaml:"id,omitempty"`
	Outer Ring    `json:"outer" yaml:"outer"`
	Holes []Ring  `json:"holes,omitempty" yaml:"holes,omitempty"`
}

// BoundingBox is an axis-aligned rectangle.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the centroid of the box (not the centroid of mass).
func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Diagonal returns the length of the box's diagonal.
func (b BoundingBox) Diagonal() float64 {
	return math.Hypot(b.Width(), b.Height())
}

// Pad returns the box enlarged by amount on every side.
func (b BoundingBox) Pad(amount float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX - amount,
		MinY: b.MinY - amount,
		MaxX: b.MaxX + amount,
		MaxY: b.MaxY + amount,
	}
}

// IsZero reports whether the box has zero (or negative) area.
func (b BoundingBox) IsZero() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// HasDistinctPoints reports whether the outer ring has at least three
// distinct points, the minimum for a non-degenerate polygon.
func (p Polygon) HasDistinctPoints() bool {
	if len(p.Outer) < 3 {
		return false
	}
	seen := 0
	for i, pt := range p.Outer {
		distinct := true
		for j := 0; j < i; j++ {
			if p.Outer[j] == pt {
				distinct = false
				break
			}
		}
		if distinct {
			seen++
		}
	}
	return seen >= 3
}

// BoundingBox returns the axis-aligned bounding box of the outer ring.
// The second return value is false if the polygon has no outer points.
func (p Polygon) BoundingBox() (BoundingBox, bool) {
	return ringBoundingBox(p.Outer)
}

func ringBoundingBox(r Ring) (BoundingBox, bool) {
	if len(r) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{MinX: r[0].X, MinY: r[0].Y, MaxX: r[0].X, MaxY: r[0].Y}
	for _, pt := range r[1:] {
		if pt.X < b.MinX {
			b.MinX = pt.X
		}
		if pt.X > b.MaxX {
			b.MaxX = pt.X
		}
		if pt.Y < b.MinY {
			b.MinY = pt.Y
		}
		if pt.Y > b.MaxY {
			b.MaxY = pt.Y
		}
	}
	return b, true
}

// Center returns the centroid of the polygon's bounding box. Returns the
// zero Point if the polygon has no outer points.
func (p Polygon) Center() Point {
	b, ok := p.BoundingBox()
	if !ok {
		return Point{}
	}
	return b.Center()
}

// Diagonal returns the length of the polygon's bounding-box diagonal.
func (p Polygon) Diagonal() float64 {
	b, ok := p.BoundingBox()
	if !ok {
		return 0
	}
	return b.Diagonal()
}

// SignedArea returns the ring's signed area via the shoelace formula.
// Positive indicates a counter-clockwise winding.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return sum / 2
}

// IsClockwise reports whether the ring winds clockwise.
func (r Ring) IsClockwise() bool {
	return r.SignedArea() < 0
}

// SignedArea returns the signed area of the polygon's outer ring.
func (p Polygon) SignedArea() float64 {
	return p.Outer.SignedArea()
}

// IsClockwise reports whether the polygon's outer ring winds clockwise.
func (p Polygon) IsClockwise() bool {
	return p.Outer.IsClockwise()
}

// Reversed returns a copy of the ring with point order reversed.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, pt := range r {
		out[len(r)-1-i] = pt
	}
	return out
}

// Normalized returns a copy of p with the conventional winding enforced:
// counter-clockwise outer ring, clockwise holes. Parsers don't reliably
// honor the convention; the clipping kernel is winding-insensitive, but
// callers that do care (offsetting, export) can normalize here instead
// of checking SignedArea themselves.
func (p Polygon) Normalized() Polygon {
	out := p
	if p.Outer.IsClockwise() {
		out.Outer = p.Outer.Reversed()
	}
	if len(p.Holes) > 0 {
		out.Holes = make([]Ring, len(p.Holes))
		for i, hole := range p.Holes {
			if hole.IsClockwise() {
				out.Holes[i] = hole
			} else {
				out.Holes[i] = hole.Reversed()
			}
		}
	}
	return out
}
