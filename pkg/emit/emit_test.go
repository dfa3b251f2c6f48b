package emit_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkline-labs/inkline/pkg/chain"
	"github.com/inkline-labs/inkline/pkg/emit"
	"github.com/inkline-labs/inkline/pkg/geom"
)

func sampleDrawing() emit.Drawing {
	return emit.Drawing{
		Lines: []geom.Line{
			geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}),
		},
		Chains: []chain.Chain{
			{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}},
		},
		Polygons: []geom.Polygon{{
			Outer: geom.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		}},
		Info: &emit.Info{Pattern: "Crosshatch", Spacing: 5, Angle: 30},
	}
}

func TestEmitSVGProducesWellFormedDocument(t *testing.T) {
	data, err := emit.EmitSVG(sampleDrawing(), emit.DefaultSVGOptions())
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
	require.Contains(t, string(data), "</svg>")
	require.Contains(t, string(data), "<line")
	require.Contains(t, string(data), "polyline")
}

func TestEmitSVGHeaderAndLegend(t *testing.T) {
	opts := emit.DefaultSVGOptions()
	opts.Title = "Test Plot"

	data, err := emit.EmitSVG(sampleDrawing(), opts)
	require.NoError(t, err)
	require.Contains(t, string(data), "Test Plot")
	require.Contains(t, string(data), "Crosshatch")
	require.Contains(t, string(data), "segments")
}

func TestEmitSVGOutlinesToggle(t *testing.T) {
	opts := emit.DefaultSVGOptions()
	opts.ShowOutlines = true
	withOutlines, err := emit.EmitSVG(sampleDrawing(), opts)
	require.NoError(t, err)
	require.Contains(t, string(withOutlines), "stroke-dasharray")

	opts.ShowOutlines = false
	without, err := emit.EmitSVG(sampleDrawing(), opts)
	require.NoError(t, err)
	require.NotContains(t, string(without), "stroke-dasharray")
}

func TestEmitSVGRejectsEmptyDrawing(t *testing.T) {
	_, err := emit.EmitSVG(emit.Drawing{}, emit.DefaultSVGOptions())
	require.Error(t, err)
}

func TestComputeStats(t *testing.T) {
	d := emit.Drawing{
		Lines: []geom.Line{
			geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}),
			geom.NewLine(geom.Point{X: 20, Y: 0}, geom.Point{X: 30, Y: 0}),
		},
	}
	s := emit.ComputeStats(d)
	require.Equal(t, 2, s.Segments)
	require.InDelta(t, 20.0, s.InkLength, 1e-9)
	// Pen lifts once, from (10,0) to (20,0).
	require.InDelta(t, 10.0, s.PenTravel, 1e-9)
}

func TestComputeStatsChains(t *testing.T) {
	d := emit.Drawing{
		Chains: []chain.Chain{
			{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}},
		},
	}
	s := emit.ComputeStats(d)
	require.Equal(t, 2, s.Segments)
	require.Equal(t, 1, s.Chains)
	require.InDelta(t, 11.0, s.InkLength, 1e-9)
	require.True(t, math.Abs(s.PenTravel) < 1e-9, "a single chain needs no pen travel")
}

func TestPaperFromName(t *testing.T) {
	p, ok := emit.PaperFromName("a4-landscape")
	require.True(t, ok)
	opts := p.Options()
	require.Greater(t, opts.Width, opts.Height)

	_, ok = emit.PaperFromName("napkin")
	require.False(t, ok)

	p, ok = emit.PaperFromName("")
	require.True(t, ok)
	require.Equal(t, emit.Square, p)
}

func TestEmitJSONRoundTrips(t *testing.T) {
	d := sampleDrawing()
	data, err := emit.EmitJSON(d)
	require.NoError(t, err)

	var decoded emit.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Drawing.Lines, len(d.Lines))
	require.Len(t, decoded.Drawing.Chains, len(d.Chains))
	require.NotNil(t, decoded.Drawing.Info)
	require.Equal(t, "Crosshatch", decoded.Drawing.Info.Pattern)
	require.Equal(t, decoded.Stats, emit.ComputeStats(d))
}
