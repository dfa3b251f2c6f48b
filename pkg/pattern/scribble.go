package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/clip"
	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// genScribble performs a bounded random walk starting from a random
// interior point. Turning rate and step length are bounded; when the
// walker strays within one spacing of the boundary its heading is biased
// back toward the polygon center. The walk terminates once it has taken
// enough steps to plausibly cover the polygon's area at the requested
// density, or hits a hard step cap, whichever comes first.
func genScribble(c Context, spacing float64, r *rng.Stream) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	const (
		maxTurn    = 0.6 // radians per step
		stepMin    = 0.4
		stepMax    = 1.2
		maxSteps   = 20000
		pushWeight = 0.8
	)

	start, ok := randomInteriorPoint(c.Polygon, c, r)
	if !ok {
		return nil
	}

	area := c.BBox.Width() * c.BBox.Height()
	targetSteps := int(area / (spacing * spacing) * 6)
	if targetSteps < 50 {
		targetSteps = 50
	}
	if targetSteps > maxSteps {
		targetSteps = maxSteps
	}

	pos := start
	heading := r.Angle()

	out := make([]geom.Line, 0, targetSteps)
	for step := 0; step < targetSteps; step++ {
		heading += r.In(-maxTurn, maxTurn)

		stepLen := spacing * r.In(stepMin, stepMax)
		next := geom.Point{
			X: pos.X + stepLen*math.Cos(heading),
			Y: pos.Y + stepLen*math.Sin(heading),
		}

		if !clip.PointInBody(c.Polygon, next) || nearBoundary(c.Polygon, next, spacing) {
			toCenter := math.Atan2(c.Center.Y-pos.Y, c.Center.X-pos.X)
			heading = heading*(1-pushWeight) + toCenter*pushWeight
			next = geom.Point{
				X: pos.X + stepLen*math.Cos(heading),
				Y: pos.Y + stepLen*math.Sin(heading),
			}
		}

		seg := geom.NewLine(pos, next)
		if !seg.IsDegenerate() {
			out = append(out, seg)
		}
		pos = next
	}
	return out
}

// randomInteriorPoint samples the polygon's bbox for a point inside the
// body, falling back to the bbox center (clipped away downstream if it
// happens to fall in a hole) after a bounded number of attempts.
func randomInteriorPoint(poly geom.Polygon, c Context, r *rng.Stream) (geom.Point, bool) {
	const attempts = 200
	for i := 0; i < attempts; i++ {
		p := geom.Point{
			X: r.In(c.BBox.MinX, c.BBox.MaxX),
			Y: r.In(c.BBox.MinY, c.BBox.MaxY),
		}
		if clip.PointInBody(poly, p) {
			return p, true
		}
	}
	return c.Center, true
}

// nearBoundary approximates "within spacing of any boundary" by testing
// the four axis-aligned neighbors at distance spacing: if any falls
// outside the body, the point is treated as near an edge or hole.
func nearBoundary(poly geom.Polygon, p geom.Point, spacing float64) bool {
	offsets := [4]geom.Point{
		{X: spacing, Y: 0}, {X: -spacing, Y: 0},
		{X: 0, Y: spacing}, {X: 0, Y: -spacing},
	}
	for _, o := range offsets {
		if !clip.PointInBody(poly, p.Add(o)) {
			return true
		}
	}
	return false
}
