package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// sampleCurve walks t from 0 to tMax in steps of dt, evaluates curve (which
// returns a point already positioned relative to the polygon center but
// before the context's angle rotation), applies that rotation, and emits
// the sampled polyline as consecutive short Lines.
func sampleCurve(c Context, tMax, dt float64, curve func(t float64) geom.Point) []geom.Line {
	if dt <= 0 || tMax <= 0 {
		return nil
	}
	var out []geom.Line
	var prev geom.Point
	have := false
	for t := 0.0; t <= tMax; t += dt {
		pt := c.Rotate(curve(t))
		if have {
			seg := geom.NewLine(prev, pt)
			if !seg.IsDegenerate() {
				out = append(out, seg)
			}
		}
		prev = pt
		have = true
	}
	return out
}

// radialReach returns a radius that overshoots the polygon's bounding
// box, so spiral/radial curves always cover it before clipping.
func radialReach(c Context) float64 {
	return c.Diagonal/2 + 1
}

// genSpiral draws an Archimedean spiral r = a*t centered on the polygon.
func genSpiral(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	a := spacing / (2 * math.Pi)
	reach := radialReach(c)
	tMax := reach / a
	dt := spacing / (8 * math.Max(a, 1e-9))
	dt = clampStep(dt, tMax)
	return sampleCurve(c, tMax, dt, func(t float64) geom.Point {
		r := a * t
		return geom.Point{X: c.Center.X + r*math.Cos(t), Y: c.Center.Y + r*math.Sin(t)}
	})
}

// genFermat draws a Fermat spiral r = a*sqrt(t).
func genFermat(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	a := spacing / math.Sqrt(2*math.Pi)
	reach := radialReach(c)
	tMax := math.Pow(reach/a, 2)
	dt := tMax / 2000
	dt = clampStep(dt, tMax)
	return sampleCurve(c, tMax, dt, func(t float64) geom.Point {
		r := a * math.Sqrt(t)
		return geom.Point{X: c.Center.X + r*math.Cos(t), Y: c.Center.Y + r*math.Sin(t)}
	})
}

// genCrossSpiral draws two Archimedean spirals with opposite winding
// sharing the same center.
func genCrossSpiral(c Context, spacing float64, r *rng.Stream) []geom.Line {
	out := genSpiral(c, spacing, r)
	a := spacing / (2 * math.Pi)
	reach := radialReach(c)
	tMax := reach / a
	dt := clampStep(spacing/(8*math.Max(a, 1e-9)), tMax)
	out = append(out, sampleCurve(c, tMax, dt, func(t float64) geom.Point {
		rr := a * t
		return geom.Point{X: c.Center.X + rr*math.Cos(-t), Y: c.Center.Y + rr*math.Sin(-t)}
	})...)
	return out
}

// genRadial draws straight spokes from the polygon center outward, spaced
// so the chord between adjacent spoke tips is roughly `spacing` at the
// outer reach.
func genRadial(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	reach := radialReach(c)
	count := int(math.Ceil(2 * math.Pi * reach / spacing))
	if count < 3 {
		count = 3
	}
	var out []geom.Line
	for i := 0; i < count; i++ {
		theta := 2 * math.Pi * float64(i) / float64(count)
		end := geom.Point{
			X: c.Center.X + reach*math.Cos(theta),
			Y: c.Center.Y + reach*math.Sin(theta),
		}
		seg := geom.NewLine(c.Rotate(c.Center), c.Rotate(end))
		if !seg.IsDegenerate() {
			out = append(out, seg)
		}
	}
	return out
}

// genRose draws a rose curve r = R*cos(k*phi), k chosen to keep petal
// width near spacing.
func genRose(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	reach := radialReach(c)
	k := math.Max(2, math.Round(reach/(2*spacing)))
	tMax := 2 * math.Pi
	dt := spacing / (4 * reach) // radians per step so arc length ~ spacing/4
	dt = clampStep(dt, tMax)
	return sampleCurve(c, tMax, dt, func(t float64) geom.Point {
		rr := reach * math.Cos(k*t)
		return geom.Point{X: c.Center.X + rr*math.Cos(t), Y: c.Center.Y + rr*math.Sin(t)}
	})
}

// genLissajous draws a Lissajous figure (A sin(a t+d), B sin(b t))
// scaled to the polygon's half-extents.
func genLissajous(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	A := c.BBox.Width()/2 + spacing
	B := c.BBox.Height()/2 + spacing
	const a, b = 3.0, 4.0
	delta := c.angleRad
	tMax := 2 * math.Pi
	dt := spacing / (8 * math.Max(A, B))
	dt = clampStep(dt, tMax)
	return sampleCurve(c, tMax, dt, func(t float64) geom.Point {
		return geom.Point{
			X: c.Center.X + A*math.Sin(a*t+delta),
			Y: c.Center.Y + B*math.Sin(b*t),
		}
	})
}

// genPhyllotaxis emits short dashes at discrete points r=c*sqrt(i),
// phi=i*137.507° (the golden angle), the classic seed-head pattern.
func genPhyllotaxis(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	const goldenAngle = 137.507 * math.Pi / 180
	reach := radialReach(c)
	scale := spacing / 2
	n := int(math.Pow(reach/scale, 2))
	if n < 1 {
		n = 1
	}
	dashLen := spacing / 6

	var out []geom.Line
	for i := 0; i <= n; i++ {
		r := scale * math.Sqrt(float64(i))
		phi := float64(i) * goldenAngle
		center := geom.Point{X: c.Center.X + r*math.Cos(phi), Y: c.Center.Y + r*math.Sin(phi)}
		dir := geom.Point{X: math.Cos(phi + math.Pi/2), Y: math.Sin(phi + math.Pi/2)}
		a := center.Add(dir.Scale(dashLen / 2))
		b := center.Sub(dir.Scale(dashLen / 2))
		seg := geom.NewLine(c.Rotate(a), c.Rotate(b))
		if !seg.IsDegenerate() {
			out = append(out, seg)
		}
	}
	return out
}

// genGuilloche draws a hypotrochoid centered on the polygon.
func genGuilloche(c Context, spacing float64, _ *rng.Stream) []geom.Line {
	reach := radialReach(c)
	R := reach * 0.8
	rr := reach * 0.3
	d := reach * 0.5
	ratio := (R - rr) / rr
	tMax := 2 * math.Pi * leastCommonCycles(rr, R)
	dt := spacing / (8 * reach)
	dt = clampStep(dt, tMax)
	return sampleCurve(c, tMax, dt, func(t float64) geom.Point {
		return geom.Point{
			X: c.Center.X + (R-rr)*math.Cos(t) + d*math.Cos(ratio*t),
			Y: c.Center.Y + (R-rr)*math.Sin(t) - d*math.Sin(ratio*t),
		}
	})
}

// leastCommonCycles returns how many full 2π cycles of t are needed for a
// hypotrochoid with the given rolling/fixed radii to close, approximated
// by a small fixed multiple sufficient for visually dense coverage
// without an expensive exact rational search.
func leastCommonCycles(rr, R float64) float64 {
	ratio := R / rr
	if ratio < 1 {
		ratio = 1 / ratio
	}
	cycles := math.Round(ratio)
	if cycles < 3 {
		cycles = 3
	}
	if cycles > 24 {
		cycles = 24
	}
	return cycles
}

// genHarmonograph sums two decaying sinusoids per axis. The secondary
// oscillators' phases are drawn from the invocation RNG, so the figure
// varies per seed while staying reproducible for a fixed one.
func genHarmonograph(c Context, spacing float64, r *rng.Stream) []geom.Line {
	amp := math.Min(c.BBox.Width(), c.BBox.Height())/2 + spacing
	tMax := 40.0
	dt := spacing / (20 * amp) * 10
	dt = clampStep(dt, tMax)
	phase := c.angleRad
	px := r.Angle()
	py := r.Angle()
	return sampleCurve(c, tMax, dt, func(t float64) geom.Point {
		x := amp*math.Sin(2.0*t+phase)*math.Exp(-0.01*t) + amp*0.3*math.Sin(3.01*t+px)*math.Exp(-0.015*t)
		y := amp*math.Sin(2.01*t)*math.Exp(-0.012*t) + amp*0.3*math.Sin(3.0*t+phase+py)*math.Exp(-0.013*t)
		return geom.Point{X: c.Center.X + x, Y: c.Center.Y + y}
	})
}

// clampStep guards against a pathologically large dt (which would emit 0
// or 1 samples) or one so small the loop would run effectively forever.
func clampStep(dt, tMax float64) float64 {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return tMax / 500
	}
	minStep := tMax / 20000
	if dt < minStep {
		dt = minStep
	}
	maxStep := tMax / 4
	if dt > maxStep {
		dt = maxStep
	}
	return dt
}
