package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// genLines produces parallel lines perpendicular to the context's angle,
// stepped by spacing.
func genLines(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	return parallelLines(c, spacing)
}

// genDiagonal is Lines by another name: the "diagonal" look comes from
// the caller's angle (conventionally 45°, see Metadata.DefaultAngle), not
// from different generation logic.
func genDiagonal(c Context, spacing float64, r *rng.Stream) []geom.Line {
	return genLines(c, spacing, r)
}

// genCrosshatch is Lines(θ) ∪ Lines(θ+90°).
func genCrosshatch(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	out := parallelLines(c, spacing)
	out = append(out, parallelLines(c.RotatedBy(90), spacing)...)
	return out
}

// genGrid is Lines(0°) ∪ Lines(90°): unlike Crosshatch it ignores the
// caller's angle for its own two families entirely.
func genGrid(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	out := parallelLines(c.WithAbsoluteAngle(0), spacing)
	out = append(out, parallelLines(c.WithAbsoluteAngle(90), spacing)...)
	return out
}

// genStripe groups Lines output into bands of three with a larger
// inter-band gap: rows 0,1,2 close together, a gap, rows 3,4,5, a gap, ...
func genStripe(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	const bandSize = 3
	const bandGapMultiplier = 2.5

	tight := spacing / 2
	bandPitch := tight*(bandSize-1) + spacing*bandGapMultiplier

	half := c.Diagonal/2 + spacing
	phase := c.BBox.MinY

	var out []geom.Line
	bandIdx := int(math.Floor((c.Padded.MinY - phase) / bandPitch))
	for {
		bandStart := phase + float64(bandIdx)*bandPitch
		if bandStart > c.Padded.MaxY {
			break
		}
		for row := 0; row < bandSize; row++ {
			y := bandStart + float64(row)*tight
			if y < c.Padded.MinY || y > c.Padded.MaxY {
				continue
			}
			l := geom.Line{X1: c.Center.X - half, Y1: y, X2: c.Center.X + half, Y2: y}
			out = append(out, c.RotateLine(l))
		}
		bandIdx++
	}
	return out
}

// brickEdges emits the rectangular cell boundaries of a 2×1 brick
// lattice with edge length spacing, alternating row offset by half a
// cell. Shared by Brick and (rotated ±45° per row) Herringbone.
func brickEdges(c Context, spacing float64, rowAngle func(row int) float64) []geom.Line {
	cellW := spacing * 2
	cellH := spacing

	rowStart := int(math.Floor((c.Padded.MinY-c.Center.Y)/cellH)) - 1
	rowEnd := int(math.Floor((c.Padded.MaxY-c.Center.Y)/cellH)) + 1

	var out []geom.Line
	for row := rowStart; row <= rowEnd; row++ {
		y0 := c.Center.Y + float64(row)*cellH
		y1 := y0 + cellH

		offset := 0.0
		if row%2 != 0 {
			offset = cellW / 2
		}

		colStart := int(math.Floor((c.Padded.MinX-c.Center.X-offset)/cellW)) - 1
		colEnd := int(math.Floor((c.Padded.MaxX-c.Center.X-offset)/cellW)) + 1

		angle := 0.0
		if rowAngle != nil {
			angle = rowAngle(row)
		}
		rowCtx := c
		if angle != 0 {
			rowCtx = c.WithAbsoluteAngle(c.AngleDeg + angle)
		}

		for col := colStart; col <= colEnd; col++ {
			x0 := c.Center.X + offset + float64(col)*cellW
			x1 := x0 + cellW

			edges := []geom.Line{
				{X1: x0, Y1: y0, X2: x1, Y2: y0},
				{X1: x1, Y1: y0, X2: x1, Y2: y1},
				{X1: x1, Y1: y1, X2: x0, Y2: y1},
				{X1: x0, Y1: y1, X2: x0, Y2: y0},
			}
			for _, e := range edges {
				out = append(out, rowCtx.RotateLine(e))
			}
		}
	}
	return out
}

// genBrick emits rectangular 2×1 brick-cell boundaries, offsetting every
// other row by half a cell width.
func genBrick(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	return brickEdges(c, spacing, nil)
}

// genHerringbone is Brick with alternating rows rotated ±45°.
func genHerringbone(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	return brickEdges(c, spacing, func(row int) float64 {
		if row%2 == 0 {
			return 45
		}
		return -45
	})
}
