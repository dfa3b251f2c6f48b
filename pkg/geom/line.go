package geom

// Line is a directed segment between two points. Degenerate (zero-length)
// lines are legal values but pattern generators should avoid emitting them.
type Line struct {
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y2 float64 `json:"y2" yaml:"y2"`
}

// NewLine builds a Line from two points.
func NewLine(a, b Point) Line {
	return Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// Start returns the line's first endpoint.
func (l Line) Start() Point { return Point{X: l.X1, Y: l.Y1} }

// End returns the line's second endpoint.
func (l Line) End() Point { return Point{X: l.X2, Y: l.Y2} }

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return l.Start().Distance(l.End())
}

// Midpoint returns the point halfway between the line's endpoints.
func (l Line) Midpoint() Point {
	return Point{X: (l.X1 + l.X2) / 2, Y: (l.Y1 + l.Y2) / 2}
}

// Reversed returns the line with its endpoints swapped.
func (l Line) Reversed() Line {
	return Line{X1: l.X2, Y1: l.Y2, X2: l.X1, Y2: l.Y1}
}

// IsDegenerate reports whether the line has (near) zero length.
func (l Line) IsDegenerate() bool {
	return l.Length() < 1e-12
}

// IsFinite reports whether every coordinate is finite.
func (l Line) IsFinite() bool {
	return l.Start().IsFinite() && l.End().IsFinite()
}

// Translate returns l shifted by (dx, dy).
func (l Line) Translate(dx, dy float64) Line {
	return Line{X1: l.X1 + dx, Y1: l.Y1 + dy, X2: l.X2 + dx, Y2: l.Y2 + dy}
}

// RotateAbout returns l with both endpoints rotated by angleRad radians
// about center.
func (l Line) RotateAbout(center Point, angleRad float64) Line {
	a := l.Start().RotateAbout(center, angleRad)
	b := l.End().RotateAbout(center, angleRad)
	return NewLine(a, b)
}

// At returns the point at parameter t along the line, t=0 at Start, t=1 at End.
func (l Line) At(t float64) Point {
	return Point{
		X: l.X1 + (l.X2-l.X1)*t,
		Y: l.Y1 + (l.Y2-l.Y1)*t,
	}
}
