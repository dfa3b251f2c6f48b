package sketchy_test

import (
	"testing"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/sketchy"
)

func TestApplyDeterministic(t *testing.T) {
	line := geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0})
	seed := uint64(42)
	cfg := sketchy.Config{Roughness: 1.0, Bowing: 1.0, DoubleStroke: true, Seed: &seed}

	a := sketchy.Apply([]geom.Line{line}, cfg)
	b := sketchy.Apply([]geom.Line{line}, cfg)

	if len(a) != len(b) {
		t.Fatalf("non-deterministic output length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output at segment %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestApplyDoubleStrokeDoublesOutput(t *testing.T) {
	line := geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 50, Y: 50})
	seed := uint64(7)

	single := sketchy.Apply([]geom.Line{line}, sketchy.Config{Roughness: 0.5, Bowing: 0.5, DoubleStroke: false, Seed: &seed})
	double := sketchy.Apply([]geom.Line{line}, sketchy.Config{Roughness: 0.5, Bowing: 0.5, DoubleStroke: true, Seed: &seed})

	if len(double) <= len(single) {
		t.Fatalf("expected double_stroke to emit more segments: single=%d double=%d", len(single), len(double))
	}
}

func TestApplySkipsDegenerateInput(t *testing.T) {
	degenerate := geom.NewLine(geom.Point{X: 5, Y: 5}, geom.Point{X: 5, Y: 5})
	out := sketchy.Apply([]geom.Line{degenerate}, sketchy.DefaultConfig())
	if len(out) != 0 {
		t.Fatalf("expected degenerate input to produce no output, got %d segments", len(out))
	}
}

func TestApplyStaysNearSourceLine(t *testing.T) {
	line := geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0})
	seed := uint64(1)
	out := sketchy.Apply([]geom.Line{line}, sketchy.Config{Roughness: 1.0, Bowing: 2.0, Seed: &seed})

	for _, seg := range out {
		for _, p := range []geom.Point{seg.Start(), seg.End()} {
			if p.X < -25 || p.X > 125 || p.Y < -25 || p.Y > 25 {
				t.Fatalf("sketchy output strayed too far from source line: %+v", p)
			}
		}
	}
}
