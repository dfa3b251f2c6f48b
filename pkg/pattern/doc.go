// Package pattern implements the fill engine's pattern dispatcher and its
// ~30 stroke generators. Each generator is a pure function of
// (polygon, spacing, angle, options) producing deterministic line
// segments, already clipped to the polygon body. Generators never mutate
// their input polygon and hold no package-level state, so calls for
// distinct polygons may be dispatched from separate goroutines.
package pattern
