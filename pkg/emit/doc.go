// Package emit renders finished plot geometry (lines or chains) to the
// output formats callers consume: SVG for preview/plotting and JSON for
// interchange. Emit never touches pattern generation, ordering, or
// chaining; it takes already-finished geometry and a set of cosmetic
// options.
package emit
