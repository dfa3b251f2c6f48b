package pattern

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/clip"
	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/rng"
)

// Options carries the optional knobs a caller may supply alongside
// spacing/angle. Seed is only consulted by the randomized generators
// (Scribble, Stipple, Truchet, Harmonograph); every other generator
// ignores it entirely, keeping its output a pure function of
// (polygon, spacing, angle).
type Options struct {
	// Seed overrides the pattern-specific default seed for randomized
	// generators. Nil means "use the default", which keeps output
	// deterministic without the caller supplying anything.
	Seed *uint64
}

// generatorFunc is the uniform shape every pattern family implements:
// given a prepared Context and the effective (post-multiplier) spacing,
// produce candidate geometry already rotated into place. The dispatcher
// clips the result to the polygon.
type generatorFunc func(c Context, spacing float64, r *rng.Stream) []geom.Line

var generators = map[Pattern]generatorFunc{
	Lines:        genLines,
	Crosshatch:   genCrosshatch,
	Zigzag:       genZigzag,
	Wiggle:       genWiggle,
	Spiral:       genSpiral,
	Fermat:       genFermat,
	Concentric:   genConcentric,
	Radial:       genRadial,
	Honeycomb:    genHoneycomb,
	CrossSpiral:  genCrossSpiral,
	Hilbert:      genHilbert,
	Guilloche:    genGuilloche,
	Lissajous:    genLissajous,
	Rose:         genRose,
	Phyllotaxis:  genPhyllotaxis,
	Scribble:     genScribble,
	Gyroid:       genGyroid,
	Pentagon14:   genPentagon14,
	Pentagon15:   genPentagon15,
	Grid:         genGrid,
	Brick:        genBrick,
	Truchet:      genTruchet,
	Stipple:      genStipple,
	Peano:        genPeano,
	Sierpinski:   genSierpinski,
	Diagonal:     genDiagonal,
	Herringbone:  genHerringbone,
	Stripe:       genStripe,
	Tessellation: genTessellation,
	Harmonograph: genHarmonograph,
}

// defaultSeeds gives every randomized generator a fixed constant seed so
// default (no explicit Seed) output is deterministic across runs.
var defaultSeeds = map[Pattern]uint64{
	Scribble:     0x5CB1B1E5EED,
	Stipple:      0x5701771EEED,
	Truchet:      0x7EAC4E7EED,
	Harmonograph: 0x6A430060EED,
}

// Generate dispatches polygon/spacing/angle to the named pattern's
// generator and returns the clipped result. Invalid parameters,
// degenerate bounding boxes, and too-small polygons all degrade to an
// empty slice rather than an error.
func Generate(p Pattern, polygon geom.Polygon, spacing, angleDeg float64, opts Options) []geom.Line {
	if !polygon.HasDistinctPoints() {
		return nil
	}
	if spacing <= 0 || !isFinite(spacing) || !isFinite(angleDeg) {
		return nil
	}

	meta, ok := p.Metadata()
	if !ok {
		return nil
	}
	effective := spacing * meta.SpacingMultiplier
	if effective <= 0 || !isFinite(effective) {
		return nil
	}

	ctx, ok := NewContext(polygon, effective, angleDeg)
	if !ok {
		return nil
	}

	gen, ok := generators[p]
	if !ok {
		return nil
	}

	r := invocationRNG(p, polygon, spacing, angleDeg, opts)
	candidates := gen(ctx, effective, r)
	return clip.ClipLinesToPolygon(candidates, polygon)
}

// Generator is the capability surface a fill strategy exposes: a display
// name and stroke generation over a polygon. The Pattern enum is the
// built-in universe of Generators; the interface lets a caller hold a
// strategy opaquely, it is not a runtime registration point.
type Generator interface {
	String() string
	Generate(polygon geom.Polygon, spacing, angleDeg float64, opts Options) []geom.Line
}

var _ Generator = Lines

// Generate routes polygon/spacing/angle to p's generator; equivalent to
// the package-level Generate with p as the first argument.
func (p Pattern) Generate(polygon geom.Polygon, spacing, angleDeg float64, opts Options) []geom.Line {
	return Generate(p, polygon, spacing, angleDeg, opts)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func invocationRNG(p Pattern, polygon geom.Polygon, spacing, angleDeg float64, opts Options) *rng.Stream {
	seed := defaultSeeds[p]
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	// Angle normalized so 0 and 360 derive the same stream, keeping the
	// seeded generators angle-periodic like the rest.
	return rng.New(seed, p.String()+"/"+polygon.ID, spacing, normalizeAngle(angleDeg))
}
