// Package clip implements the geometry kernel's point-classification and
// line-clipping primitives: ray-crossing point-in-polygon tests and
// parametric line-against-polygon intersection. Nothing in this package
// panics; pathological input (NaN, infinite coordinates, degenerate
// polygons) degrades to an empty or false result rather than aborting.
package clip
