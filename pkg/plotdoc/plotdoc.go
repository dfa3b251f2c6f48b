package plotdoc

import (
	"errors"
	"fmt"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/pattern"
)

// Sentinel errors returned (wrapped) by Validate, so callers can branch on
// category with errors.Is rather than string matching.
var (
	// ErrNoPolygons is returned when a document names zero polygons.
	ErrNoPolygons = errors.New("plotdoc: document has no polygons")
	// ErrUnknownPattern is returned when the configured fill pattern name
	// does not resolve via pattern.FromName.
	ErrUnknownPattern = errors.New("plotdoc: unknown fill pattern")
)

// FillConfig names the pattern and its spacing/angle parameters.
type FillConfig struct {
	Pattern string  `json:"pattern" yaml:"pattern"`
	Spacing float64 `json:"spacing" yaml:"spacing"`
	Angle   float64 `json:"angle" yaml:"angle"`
	// Seed overrides the pattern's default RNG seed for randomized
	// generators (Scribble, Stipple, Truchet, Harmonograph). Nil uses
	// the pattern's built-in default.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// SketchyConfig configures the optional hand-drawn stroke perturbation.
type SketchyConfig struct {
	Enabled      bool     `json:"enabled" yaml:"enabled"`
	Roughness    float64  `json:"roughness" yaml:"roughness"`
	Bowing       float64  `json:"bowing" yaml:"bowing"`
	DoubleStroke bool     `json:"double_stroke" yaml:"double_stroke"`
	Seed         *uint64  `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// OrderingConfig selects how polygons are sequenced before plotting.
type OrderingConfig struct {
	Strategy string `json:"strategy" yaml:"strategy"` // "document" | "nearest_neighbor"
}

// ChainingConfig configures the endpoint-bridging pass applied after fill
// generation and before emission.
type ChainingConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// OutputConfig describes the rendered preview: canvas geometry and the
// annotation layers. Zero values defer to the emitter's defaults.
type OutputConfig struct {
	Title        string  `json:"title,omitempty" yaml:"title,omitempty"`
	Paper        string  `json:"paper,omitempty" yaml:"paper,omitempty"`
	Width        int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height       int     `json:"height,omitempty" yaml:"height,omitempty"`
	Margin       int     `json:"margin,omitempty" yaml:"margin,omitempty"`
	StrokeWidth  float64 `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	ShowOutlines *bool   `json:"show_outlines,omitempty" yaml:"show_outlines,omitempty"`
	ShowLegend   *bool   `json:"show_legend,omitempty" yaml:"show_legend,omitempty"`
	ShowStats    *bool   `json:"show_stats,omitempty" yaml:"show_stats,omitempty"`
}

// Document is the full description of one plot job.
type Document struct {
	// Seed is the job's master seed, applied to any randomized stage
	// (fill, sketchy) that does not set its own. Nil leaves each stage
	// on its built-in default.
	Seed     *uint64        `json:"seed,omitempty" yaml:"seed,omitempty"`
	Polygons []geom.Polygon `json:"polygons" yaml:"polygons"`
	Fill     FillConfig     `json:"fill" yaml:"fill"`
	Sketchy  SketchyConfig  `json:"sketchy" yaml:"sketchy"`
	Ordering OrderingConfig `json:"ordering" yaml:"ordering"`
	Chaining ChainingConfig `json:"chaining" yaml:"chaining"`
	Output   OutputConfig   `json:"output,omitempty" yaml:"output,omitempty"`
}

// Default returns a Document with the standard defaults for every
// optional stage, and an empty polygon list the caller is expected to
// populate.
func Default() Document {
	return Document{
		Fill: FillConfig{Pattern: "Lines", Spacing: 10, Angle: 0},
		Sketchy: SketchyConfig{
			Enabled: false, Roughness: 1.0, Bowing: 1.0, DoubleStroke: true,
		},
		Ordering: OrderingConfig{Strategy: "document"},
		Chaining: ChainingConfig{Enabled: false, Tolerance: 0.5},
	}
}

// Validate checks the document for structural and semantic errors. It
// does not inspect polygon winding or self-intersection; the pattern
// generators degrade gracefully on malformed geometry per their own
// contract.
func (d Document) Validate() error {
	if len(d.Polygons) == 0 {
		return ErrNoPolygons
	}
	for i, p := range d.Polygons {
		if !p.HasDistinctPoints() {
			return fmt.Errorf("polygon[%d]: %w", i, errLessThanThreePoints)
		}
	}

	if _, ok := pattern.FromName(d.Fill.Pattern); !ok {
		return fmt.Errorf("fill.pattern %q: %w", d.Fill.Pattern, ErrUnknownPattern)
	}
	if d.Fill.Spacing <= 0 {
		return fmt.Errorf("fill.spacing must be > 0, got %f", d.Fill.Spacing)
	}

	switch d.Ordering.Strategy {
	case "", "document", "nearest_neighbor":
	default:
		return fmt.Errorf("ordering.strategy %q: %w", d.Ordering.Strategy, errUnknownStrategy)
	}

	if d.Chaining.Enabled && d.Chaining.Tolerance < 0 {
		return fmt.Errorf("chaining.tolerance must be >= 0, got %f", d.Chaining.Tolerance)
	}

	if d.Output.Width < 0 || d.Output.Height < 0 || d.Output.Margin < 0 {
		return fmt.Errorf("output dimensions must be >= 0 (zero defers to defaults)")
	}
	if d.Output.StrokeWidth < 0 {
		return fmt.Errorf("output.stroke_width must be >= 0, got %f", d.Output.StrokeWidth)
	}

	return nil
}

var (
	errLessThanThreePoints = errors.New("fewer than three distinct outer points")
	errUnknownStrategy     = errors.New("unknown ordering strategy")
)
