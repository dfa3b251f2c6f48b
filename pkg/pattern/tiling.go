package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// genHoneycomb draws a regular hexagonal (flat-top) lattice with edge
// length spacing. Shared hex edges are emitted once per adjacent cell, so
// interior edges are drawn twice; harmless for a stroke plotter and
// simpler than deduplicating across neighbors.
func genHoneycomb(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	dx := 1.5 * spacing
	dy := math.Sqrt(3) * spacing

	qStart := int(math.Floor((c.Padded.MinX-c.Center.X)/dx)) - 1
	qEnd := int(math.Ceil((c.Padded.MaxX-c.Center.X)/dx)) + 1

	var out []geom.Line
	for q := qStart; q <= qEnd; q++ {
		cx := c.Center.X + float64(q)*dx
		rowOffset := 0.0
		if q%2 != 0 {
			rowOffset = dy / 2
		}
		rStart := int(math.Floor((c.Padded.MinY-c.Center.Y-rowOffset)/dy)) - 1
		rEnd := int(math.Ceil((c.Padded.MaxY-c.Center.Y-rowOffset)/dy)) + 1
		for row := rStart; row <= rEnd; row++ {
			cy := c.Center.Y + rowOffset + float64(row)*dy
			out = append(out, hexEdges(c, geom.Point{X: cx, Y: cy}, spacing)...)
		}
	}
	return out
}

func hexEdges(c Context, center geom.Point, edge float64) []geom.Line {
	var verts [6]geom.Point
	for i := 0; i < 6; i++ {
		theta := float64(i) * math.Pi / 3
		verts[i] = geom.Point{X: center.X + edge*math.Cos(theta), Y: center.Y + edge*math.Sin(theta)}
	}
	out := make([]geom.Line, 0, 6)
	for i := 0; i < 6; i++ {
		a := c.Rotate(verts[i])
		b := c.Rotate(verts[(i+1)%6])
		out = append(out, geom.NewLine(a, b))
	}
	return out
}

// genTessellation draws a simple square-cell tiling, the generic member
// of the tiling family with no special offset or rotation rule.
func genTessellation(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	colStart := int(math.Floor((c.Padded.MinX-c.Center.X)/spacing)) - 1
	colEnd := int(math.Ceil((c.Padded.MaxX-c.Center.X)/spacing)) + 1
	rowStart := int(math.Floor((c.Padded.MinY-c.Center.Y)/spacing)) - 1
	rowEnd := int(math.Ceil((c.Padded.MaxY-c.Center.Y)/spacing)) + 1

	var out []geom.Line
	for row := rowStart; row <= rowEnd; row++ {
		y0 := c.Center.Y + float64(row)*spacing
		y1 := y0 + spacing
		for col := colStart; col <= colEnd; col++ {
			x0 := c.Center.X + float64(col)*spacing
			x1 := x0 + spacing
			edges := []geom.Line{
				{X1: x0, Y1: y0, X2: x1, Y2: y0},
				{X1: x1, Y1: y0, X2: x1, Y2: y1},
				{X1: x1, Y1: y1, X2: x0, Y2: y1},
				{X1: x0, Y1: y1, X2: x0, Y2: y0},
			}
			for _, e := range edges {
				out = append(out, c.RotateLine(e))
			}
		}
	}
	return out
}

// genTruchet fills each square cell of side `spacing` with one of two
// quarter-arc orientations, chosen by the per-invocation RNG, producing
// the classic Truchet-tile curve pattern approximated with short chords.
func genTruchet(c Context, spacing float64, r *rng.Stream) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	colStart := int(math.Floor((c.Padded.MinX-c.Center.X)/spacing)) - 1
	colEnd := int(math.Ceil((c.Padded.MaxX-c.Center.X)/spacing)) + 1
	rowStart := int(math.Floor((c.Padded.MinY-c.Center.Y)/spacing)) - 1
	rowEnd := int(math.Ceil((c.Padded.MaxY-c.Center.Y)/spacing)) + 1

	var out []geom.Line
	for row := rowStart; row <= rowEnd; row++ {
		for col := colStart; col <= colEnd; col++ {
			x0 := c.Center.X + float64(col)*spacing
			y0 := c.Center.Y + float64(row)*spacing
			orientA := r.Bool()
			out = append(out, truchetTile(c, x0, y0, spacing, orientA)...)
		}
	}
	return out
}

func truchetTile(c Context, x0, y0, size float64, orientA bool) []geom.Line {
	const segments = 6
	half := size / 2
	var out []geom.Line

	arc := func(center geom.Point, radius, start, end float64) {
		var prev geom.Point
		have := false
		for i := 0; i <= segments; i++ {
			t := start + (end-start)*float64(i)/float64(segments)
			pt := geom.Point{X: center.X + radius*math.Cos(t), Y: center.Y + radius*math.Sin(t)}
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
	}

	if orientA {
		arc(geom.Point{X: x0, Y: y0}, half, 0, math.Pi/2)
		arc(geom.Point{X: x0 + size, Y: y0 + size}, half, math.Pi, 3*math.Pi/2)
	} else {
		arc(geom.Point{X: x0 + size, Y: y0}, half, math.Pi/2, math.Pi)
		arc(geom.Point{X: x0, Y: y0 + size}, half, 3*math.Pi/2, 2*math.Pi)
	}
	return out
}

// genSierpinski recursively subdivides an equilateral triangle spanning
// the polygon's bounding box down to a depth at which the sub-triangle
// side approximates spacing, emitting each level's inner "hole" edges.
func genSierpinski(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	side := math.Max(c.BBox.Width(), c.BBox.Height()) * 1.2
	if side <= 0 || spacing <= 0 {
		return nil
	}
	depth := int(math.Ceil(math.Log2(side / spacing)))
	if depth < 1 {
		depth = 1
	}
	if depth > 8 {
		depth = 8
	}

	height := side * math.Sqrt(3) / 2
	p1 := geom.Point{X: c.Center.X - side/2, Y: c.Center.Y + height/3}
	p2 := geom.Point{X: c.Center.X + side/2, Y: c.Center.Y + height/3}
	p3 := geom.Point{X: c.Center.X, Y: c.Center.Y - 2*height/3}

	var out []geom.Line
	emit := func(a, b geom.Point) {
		seg := geom.NewLine(c.Rotate(a), c.Rotate(b))
		if !seg.IsDegenerate() {
			out = append(out, seg)
		}
	}
	sierpinskiSubdivide(p1, p2, p3, depth, emit)
	return out
}

func sierpinskiSubdivide(p1, p2, p3 geom.Point, depth int, emit func(a, b geom.Point)) {
	m12 := p1.Add(p2).Scale(0.5)
	m23 := p2.Add(p3).Scale(0.5)
	m31 := p3.Add(p1).Scale(0.5)

	emit(m12, m23)
	emit(m23, m31)
	emit(m31, m12)

	if depth <= 0 {
		emit(p1, p2)
		emit(p2, p3)
		emit(p3, p1)
		return
	}
	sierpinskiSubdivide(p1, m12, m31, depth-1, emit)
	sierpinskiSubdivide(m12, p2, m23, depth-1, emit)
	sierpinskiSubdivide(m31, m23, p3, depth-1, emit)
}

// pentagonTile is a convex pentagon defined in a unit cell, tiled by
// translating it along two lattice basis vectors. The vertex sets below
// are a periodic approximation in the spirit of Rao's equilateral
// pentagon tiling types 14 and 15; see DESIGN.md for why an exact
// edge-to-edge reproduction of those classifications was not attempted.
type pentagonTile struct {
	verts [5]geom.Point
	basisU, basisV geom.Point
}

var pentagon14 = pentagonTile{
	verts: [5]geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0.55},
		{X: 0.5, Y: 1}, {X: 0, Y: 0.65},
	},
	basisU: geom.Point{X: 1, Y: 0},
	basisV: geom.Point{X: 0, Y: 1},
}

var pentagon15 = pentagonTile{
	verts: [5]geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0.18}, {X: 0.82, Y: 1},
		{X: 0.3, Y: 1}, {X: 0, Y: 0.6},
	},
	basisU: geom.Point{X: 1, Y: 0},
	basisV: geom.Point{X: 0, Y: 1},
}

func genPentagonTiling(c Context, spacing float64, tile pentagonTile) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	ux := tile.basisU.X * spacing
	uy := tile.basisU.Y * spacing
	vx := tile.basisV.X * spacing
	vy := tile.basisV.Y * spacing

	iStart := int(math.Floor((c.Padded.MinX-c.Center.X)/spacing)) - 1
	iEnd := int(math.Ceil((c.Padded.MaxX-c.Center.X)/spacing)) + 1
	jStart := int(math.Floor((c.Padded.MinY-c.Center.Y)/spacing)) - 1
	jEnd := int(math.Ceil((c.Padded.MaxY-c.Center.Y)/spacing)) + 1

	var out []geom.Line
	for i := iStart; i <= iEnd; i++ {
		for j := jStart; j <= jEnd; j++ {
			ox := c.Center.X + float64(i)*ux + float64(j)*vx
			oy := c.Center.Y + float64(i)*uy + float64(j)*vy
			for k := 0; k < 5; k++ {
				a := geom.Point{X: ox + tile.verts[k].X*spacing, Y: oy + tile.verts[k].Y*spacing}
				b := geom.Point{X: ox + tile.verts[(k+1)%5].X*spacing, Y: oy + tile.verts[(k+1)%5].Y*spacing}
				seg := geom.NewLine(c.Rotate(a), c.Rotate(b))
				if !seg.IsDegenerate() {
					out = append(out, seg)
				}
			}
		}
	}
	return out
}

func genPentagon14(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	return genPentagonTiling(c, spacing, pentagon14)
}

func genPentagon15(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	return genPentagonTiling(c, spacing, pentagon15)
}
