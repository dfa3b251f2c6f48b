package pattern

import (
	"fmt"
	"strings"
)

// Pattern is a tagged enumeration over the fixed set of stroke generators.
// It carries no runtime state; it is used purely as a dispatch key and to
// fetch per-pattern metadata (display name, spacing multiplier, default
// angle).
type Pattern int

const (
	Lines Pattern = iota
	Crosshatch
	Zigzag
	Wiggle
	Spiral
	Fermat
	Concentric
	Radial
	Honeycomb
	CrossSpiral
	Hilbert
	Guilloche
	Lissajous
	Rose
	Phyllotaxis
	Scribble
	Gyroid
	Pentagon14
	Pentagon15
	Grid
	Brick
	Truchet
	Stipple
	Peano
	Sierpinski
	Diagonal
	Herringbone
	Stripe
	Tessellation
	Harmonograph

	numPatterns
)

// String returns the canonical display name of the pattern.
func (p Pattern) String() string {
	if meta, ok := registry[p]; ok {
		return meta.Name
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

// aliases maps case-insensitive alternate spellings to their canonical
// Pattern. Looked up after an exact-name match fails.
var aliases = map[string]Pattern{
	"sine":         Wiggle,
	"wave":         Wiggle,
	"dots":         Stipple,
	"pointillism":  Stipple,
	"hatch":        Lines,
	"hatching":     Lines,
	"hex":          Honeycomb,
	"hexagon":      Honeycomb,
	"penrose14":    Pentagon14,
	"penrose15":    Pentagon15,
	"spacefill":    Hilbert,
	"hilbertcurve": Hilbert,
	"peanocurve":   Peano,
	"tiles":        Tessellation,
	"scribbles":    Scribble,
	"archimedean":  Spiral,
}

// FromName resolves a pattern by case-insensitive name or alias. The
// second return value is false for unrecognized names.
func FromName(name string) (Pattern, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for p, meta := range registry {
		if strings.ToLower(meta.Name) == key {
			return p, true
		}
	}
	if p, ok := aliases[key]; ok {
		return p, true
	}
	return 0, false
}

// All returns every built-in pattern in enumeration order; this order also
// defines presentation order in any caller-facing UI.
func All() []Pattern {
	out := make([]Pattern, 0, int(numPatterns))
	for p := Pattern(0); p < numPatterns; p++ {
		out = append(out, p)
	}
	return out
}

// Metadata describes a pattern's display name and tunable-axis labels.
type Metadata struct {
	Name              string
	SpacingMultiplier float64
	DefaultAngle      float64
	SpacingLabel      string
	AngleLabel        string
}

// Metadata returns the display metadata for p. Returns the zero value and
// false for an unrecognized pattern.
func (p Pattern) Metadata() (Metadata, bool) {
	meta, ok := registry[p]
	return meta, ok
}

// SpacingMultiplier returns the internal multiplier applied to the
// caller-facing spacing parameter before generation: "spacing" carries
// consistent visual meaning across patterns even though the underlying
// geometric parameter (cell side, arm separation, tile edge) varies.
func (p Pattern) SpacingMultiplier() float64 {
	if meta, ok := registry[p]; ok {
		return meta.SpacingMultiplier
	}
	return 1.0
}

var registry = map[Pattern]Metadata{
	Lines:        {Name: "Lines", SpacingMultiplier: 1, SpacingLabel: "line spacing", AngleLabel: "angle"},
	Crosshatch:   {Name: "Crosshatch", SpacingMultiplier: 1, SpacingLabel: "line spacing", AngleLabel: "angle"},
	Zigzag:       {Name: "Zigzag", SpacingMultiplier: 1, SpacingLabel: "row spacing", AngleLabel: "angle"},
	Wiggle:       {Name: "Wiggle", SpacingMultiplier: 1, SpacingLabel: "row spacing", AngleLabel: "angle"},
	Spiral:       {Name: "Spiral", SpacingMultiplier: 1, SpacingLabel: "arm spacing", AngleLabel: "start angle"},
	Fermat:       {Name: "Fermat", SpacingMultiplier: 1, SpacingLabel: "arm spacing", AngleLabel: "start angle"},
	Concentric:   {Name: "Concentric", SpacingMultiplier: 1, SpacingLabel: "ring spacing", AngleLabel: "unused"},
	Radial:       {Name: "Radial", SpacingMultiplier: 1, SpacingLabel: "spoke spacing", AngleLabel: "start angle"},
	Honeycomb:    {Name: "Honeycomb", SpacingMultiplier: 4, SpacingLabel: "cell edge", AngleLabel: "angle"},
	CrossSpiral:  {Name: "CrossSpiral", SpacingMultiplier: 1, SpacingLabel: "arm spacing", AngleLabel: "start angle"},
	Hilbert:      {Name: "Hilbert", SpacingMultiplier: 1, SpacingLabel: "cell size", AngleLabel: "angle"},
	Guilloche:    {Name: "Guilloche", SpacingMultiplier: 1, SpacingLabel: "lobe spacing", AngleLabel: "phase"},
	Lissajous:    {Name: "Lissajous", SpacingMultiplier: 1, SpacingLabel: "loop spacing", AngleLabel: "phase"},
	Rose:         {Name: "Rose", SpacingMultiplier: 1, SpacingLabel: "petal spacing", AngleLabel: "start angle"},
	Phyllotaxis:  {Name: "Phyllotaxis", SpacingMultiplier: 1, SpacingLabel: "seed spacing", AngleLabel: "unused"},
	Scribble:     {Name: "Scribble", SpacingMultiplier: 1, SpacingLabel: "boundary margin", AngleLabel: "unused"},
	Gyroid:       {Name: "Gyroid", SpacingMultiplier: 1, SpacingLabel: "period", AngleLabel: "unused"},
	Pentagon14:   {Name: "Pentagon14", SpacingMultiplier: 3, SpacingLabel: "tile edge", AngleLabel: "angle"},
	Pentagon15:   {Name: "Pentagon15", SpacingMultiplier: 3, SpacingLabel: "tile edge", AngleLabel: "angle"},
	Grid:         {Name: "Grid", SpacingMultiplier: 1, SpacingLabel: "cell size", AngleLabel: "angle"},
	Brick:        {Name: "Brick", SpacingMultiplier: 1, SpacingLabel: "brick width", AngleLabel: "angle"},
	Truchet:      {Name: "Truchet", SpacingMultiplier: 2, SpacingLabel: "tile size", AngleLabel: "unused"},
	Stipple:      {Name: "Stipple", SpacingMultiplier: 1, SpacingLabel: "min distance", AngleLabel: "unused"},
	Peano:        {Name: "Peano", SpacingMultiplier: 1, SpacingLabel: "cell size", AngleLabel: "angle"},
	Sierpinski:   {Name: "Sierpinski", SpacingMultiplier: 1, SpacingLabel: "base edge", AngleLabel: "angle"},
	Diagonal:     {Name: "Diagonal", SpacingMultiplier: 1, SpacingLabel: "line spacing", AngleLabel: "angle", DefaultAngle: 45},
	Herringbone:  {Name: "Herringbone", SpacingMultiplier: 1, SpacingLabel: "brick width", AngleLabel: "angle"},
	Stripe:       {Name: "Stripe", SpacingMultiplier: 1, SpacingLabel: "band spacing", AngleLabel: "angle"},
	Tessellation: {Name: "Tessellation", SpacingMultiplier: 1, SpacingLabel: "cell size", AngleLabel: "angle"},
	Harmonograph: {Name: "Harmonograph", SpacingMultiplier: 1, SpacingLabel: "sample spacing", AngleLabel: "phase"},
}
