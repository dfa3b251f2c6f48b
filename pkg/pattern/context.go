package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
)

// Context is a derived, read-only bundle computed once per
// (polygon, pattern) invocation so generators avoid repeated
// recomputation of the same bounding geometry and rotation trig.
type Context struct {
	Polygon    geom.Polygon
	BBox       geom.BoundingBox
	Center     geom.Point
	Diagonal   float64
	Padded     geom.BoundingBox
	AngleDeg   float64
	angleRad   float64
	sin, cos   float64
}

// NewContext builds a Context for polygon at the given spacing (used to
// size the padded bounding region) and angle in degrees.
func NewContext(polygon geom.Polygon, spacing, angleDeg float64) (Context, bool) {
	bbox, ok := polygon.BoundingBox()
	if !ok || bbox.IsZero() {
		return Context{}, false
	}
	pad := spacing
	if pad <= 0 {
		pad = 1
	}
	angleRad := angleDeg * math.Pi / 180
	return Context{
		Polygon:  polygon,
		BBox:     bbox,
		Center:   bbox.Center(),
		Diagonal: bbox.Diagonal(),
		Padded:   bbox.Pad(pad),
		AngleDeg: normalizeAngle(angleDeg),
		angleRad: angleRad,
		sin:      math.Sin(angleRad),
		cos:      math.Cos(angleRad),
	}, true
}

// Rotate rotates p by the context's angle about the polygon's center.
func (c Context) Rotate(p geom.Point) geom.Point {
	d := p.Sub(c.Center)
	return geom.Point{
		X: d.X*c.cos - d.Y*c.sin + c.Center.X,
		Y: d.X*c.sin + d.Y*c.cos + c.Center.Y,
	}
}

// RotateLine rotates both endpoints of l by the context's angle about the
// polygon's center.
func (c Context) RotateLine(l geom.Line) geom.Line {
	return geom.NewLine(c.Rotate(l.Start()), c.Rotate(l.End()))
}

// WithAbsoluteAngle returns a copy of c with its rotation angle replaced
// by deg, ignoring the angle the context was built with. Used by Grid,
// whose two line families sit at fixed 0°/90° regardless of the caller's
// angle parameter.
func (c Context) WithAbsoluteAngle(deg float64) Context {
	angleRad := deg * math.Pi / 180
	c.AngleDeg = normalizeAngle(deg)
	c.angleRad = angleRad
	c.sin = math.Sin(angleRad)
	c.cos = math.Cos(angleRad)
	return c
}

// RotatedBy returns a copy of c with deltaDeg added to its current angle.
// Used by Crosshatch, whose second line family sits 90° from whatever
// angle the caller requested.
func (c Context) RotatedBy(deltaDeg float64) Context {
	return c.WithAbsoluteAngle(c.AngleDeg + deltaDeg)
}

// normalizeAngle reduces deg to [0, 360).
func normalizeAngle(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// parallelLines generates a family of candidate lines perpendicular to
// direction angleDeg, stepped by spacing across half the padded diagonal
// on either side of the center, each long enough to span the padded bbox
// diagonal. This is the shared primitive behind Lines, Diagonal, Grid,
// and Crosshatch; Zigzag and Wiggle reuse its row layout.
//
// The step phase is anchored to the unrotated bbox's minimum Y plus half a
// spacing, so a spacing-10 fill of a [0,100] square lands exactly on
// y=5,15,...,95: the first row sits half a spacing in from the edge, not
// on it. Rows extend the same phased sequence out to the full reach so
// rotated candidates still cover the corners; rows that land outside the
// polygon clip away to nothing.
func parallelLines(c Context, spacing float64) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	half := c.Diagonal/2 + spacing
	phase := c.BBox.MinY + spacing/2

	// First candidate row at or below the low end of the reach.
	k0 := math.Floor((c.Center.Y - half - phase) / spacing)
	y := phase + k0*spacing

	var out []geom.Line
	for y <= c.Center.Y+half {
		l := geom.Line{X1: c.Center.X - half, Y1: y, X2: c.Center.X + half, Y2: y}
		out = append(out, c.RotateLine(l))
		y += spacing
	}
	return out
}
