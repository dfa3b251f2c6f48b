package sketchy

import (
	"fmt"
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// Config controls how heavily Apply perturbs straight strokes.
type Config struct {
	// Roughness scales endpoint jitter: radius = Roughness * min(length, 20).
	Roughness float64
	// Bowing scales the midpoint's perpendicular offset in document units.
	Bowing float64
	// DoubleStroke, when true, draws a second independently-jittered pass
	// over the same input line and appends it to the output.
	DoubleStroke bool
	// Seed fixes the per-call RNG derivation. Nil uses a fixed default,
	// keeping Apply deterministic without the caller supplying anything.
	Seed *uint64
}

// DefaultConfig returns the standard defaults: roughness 1.0, bowing
// 1.0, double stroke on.
func DefaultConfig() Config {
	return Config{Roughness: 1.0, Bowing: 1.0, DoubleStroke: true}
}

const defaultSeed uint64 = 0x5CE7C14EED

// Apply perturbs every line in lines per cfg and returns the resulting
// (larger, if DoubleStroke) set of short straight sub-segments. Output
// order is input order, each source line's pass(es) emitted contiguously.
func Apply(lines []geom.Line, cfg Config) []geom.Line {
	seed := defaultSeed
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	out := make([]geom.Line, 0, len(lines)*3)
	for i, l := range lines {
		if l.IsDegenerate() || !l.IsFinite() {
			continue
		}
		r := rng.New(seed, fmt.Sprintf("sketchy/%d", i), cfg.Roughness, cfg.Bowing)
		out = append(out, sketchLine(l, cfg, r)...)

		if cfg.DoubleStroke {
			r2 := rng.New(seed, fmt.Sprintf("sketchy/%d/dup", i), cfg.Roughness, cfg.Bowing)
			out = append(out, sketchLine(l, cfg, r2)...)
		}
	}
	return out
}

// sketchLine jitters both endpoints, adds one or two bowed control points
// between them, and returns the resulting 2-3 short sub-segments.
func sketchLine(l geom.Line, cfg Config, r *rng.Stream) []geom.Line {
	radius := cfg.Roughness * math.Min(l.Length(), 20)
	start := jitter(l.Start(), radius, r)
	end := jitter(l.End(), radius, r)

	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1
	length := math.Hypot(dx, dy)
	var px, py float64
	if length > 1e-12 {
		px, py = -dy/length, dx/length
	}

	bow := func(t float64) geom.Point {
		base := l.At(t)
		offset := cfg.Bowing * r.In(-1, 1)
		return geom.Point{X: base.X + px*offset, Y: base.Y + py*offset}
	}

	var controls []geom.Point
	if r.Bool() {
		controls = []geom.Point{bow(0.5)}
	} else {
		controls = []geom.Point{bow(1.0 / 3), bow(2.0 / 3)}
	}

	pts := append([]geom.Point{start}, controls...)
	pts = append(pts, end)

	out := make([]geom.Line, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		seg := geom.NewLine(pts[i], pts[i+1])
		if !seg.IsDegenerate() {
			out = append(out, seg)
		}
	}
	return out
}

func jitter(p geom.Point, radius float64, r *rng.Stream) geom.Point {
	if radius <= 0 {
		return p
	}
	theta := r.Angle()
	mag := r.In(0, radius)
	return geom.Point{X: p.X + mag*math.Cos(theta), Y: p.Y + mag*math.Sin(theta)}
}
