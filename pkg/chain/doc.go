// Package chain merges independent stroke segments that share endpoints
// within a tolerance into longer polylines, reducing pen lifts without
// creating or discarding any geometry.
package chain
