// Package geom provides the primitive 2D types shared across the fill
// pipeline: points, directed line segments, and polygons with holes.
// Types are value types and are safe to copy and share across goroutines;
// nothing in this package mutates shared state.
package geom
