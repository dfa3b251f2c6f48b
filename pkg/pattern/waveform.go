package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// waveShape maps a phase in radians to a value in [-1, 1].
type waveShape func(phase float64) float64

func sineShape(phase float64) float64 {
	return math.Sin(phase)
}

// triangleShape produces a triangular wave with the same period and
// amplitude convention as sineShape, starting at its maximum.
func triangleShape(phase float64) float64 {
	frac := math.Mod(phase/(2*math.Pi), 1)
	if frac < 0 {
		frac++
	}
	return 4*math.Abs(frac-0.5) - 1
}

// genericWave samples shape along each parallel center-line produced by
// parallelLines' row layout, at a fixed step along the row, and emits the
// sampled polyline as consecutive short Lines.
func genericWave(c Context, spacing float64, shape waveShape) []geom.Line {
	if spacing <= 0 {
		return nil
	}
	amplitude := 0.5 * spacing
	period := spacing * 2
	step := spacing / 4
	if step <= 0 {
		return nil
	}

	half := c.Diagonal/2 + spacing
	phase := c.BBox.MinY + spacing/2
	k0 := math.Floor((c.Center.Y - half - phase) / spacing)
	y := phase + k0*spacing

	var out []geom.Line
	for y <= c.Center.Y+half {
		var prev geom.Point
		have := false
		for x := c.Center.X - half; x <= c.Center.X+half; x += step {
			t := (x - c.Center.X) / period * 2 * math.Pi
			pt := geom.Point{X: x, Y: y + shape(t)*amplitude}
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
		y += spacing
	}
	return out
}

func genZigzag(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	return genericWave(c, spacing, triangleShape)
}

func genWiggle(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	return genericWave(c, spacing, sineShape)
}
