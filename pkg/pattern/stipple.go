package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/clip"
	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// genStipple performs Poisson-disk (Bridson-style) sampling over the
// polygon's bounding region with minimum inter-point distance `spacing`,
// emitting each accepted sample as a short dash so plotters draw a dot.
func genStipple(c Context, spacing float64, r *rng.Stream) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	const (
		candidatesPerPoint = 24
		maxPoints          = 20000
	)
	cellSize := spacing / math.Sqrt2
	gridW := int(c.Padded.Width()/cellSize) + 1
	gridH := int(c.Padded.Height()/cellSize) + 1
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}
	grid := make([]int, gridW*gridH) // index+1 into points, 0 = empty
	cellOf := func(p geom.Point) (int, int) {
		cx := int((p.X - c.Padded.MinX) / cellSize)
		cy := int((p.Y - c.Padded.MinY) / cellSize)
		return cx, cy
	}

	var points []geom.Point
	var active []int

	place := func(p geom.Point) {
		points = append(points, p)
		active = append(active, len(points)-1)
		cx, cy := cellOf(p)
		if cx >= 0 && cx < gridW && cy >= 0 && cy < gridH {
			grid[cy*gridW+cx] = len(points)
		}
	}

	fits := func(p geom.Point) bool {
		if p.X < c.Padded.MinX || p.X > c.Padded.MaxX || p.Y < c.Padded.MinY || p.Y > c.Padded.MaxY {
			return false
		}
		cx, cy := cellOf(p)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				nx, ny := cx+dx, cy+dy
				if nx < 0 || nx >= gridW || ny < 0 || ny >= gridH {
					continue
				}
				idx := grid[ny*gridW+nx]
				if idx == 0 {
					continue
				}
				if p.Distance(points[idx-1]) < spacing {
					return false
				}
			}
		}
		return true
	}

	start, ok := randomInteriorPoint(c.Polygon, c, r)
	if !ok {
		return nil
	}
	place(start)

	for len(active) > 0 && len(points) < maxPoints {
		ai := r.Pick(len(active))
		base := points[active[ai]]
		found := false
		for i := 0; i < candidatesPerPoint; i++ {
			radius := r.In(spacing, 2*spacing)
			theta := r.Angle()
			cand := geom.Point{
				X: base.X + radius*math.Cos(theta),
				Y: base.Y + radius*math.Sin(theta),
			}
			if fits(cand) {
				place(cand)
				found = true
				break
			}
		}
		if !found {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	dashLen := spacing * 0.05
	if dashLen < 1e-6 {
		dashLen = 1e-6
	}
	out := make([]geom.Line, 0, len(points))
	for _, p := range points {
		if !clip.PointInBody(c.Polygon, p) {
			continue
		}
		a := geom.Point{X: p.X - dashLen/2, Y: p.Y}
		b := geom.Point{X: p.X + dashLen/2, Y: p.Y}
		out = append(out, geom.NewLine(a, b))
	}
	return out
}
