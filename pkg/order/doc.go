// Package order sequences a set of polygons for plotting, either in
// document order or by a greedy nearest-neighbor walk over bounding-box
// centroids, reporting the estimated pen-travel reduction achieved.
package order
