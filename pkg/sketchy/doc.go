// Package sketchy perturbs straight plotter strokes into a hand-drawn
// approximation: jittered endpoints, a bowed midpoint, and an optional
// second overlapping stroke. It never touches geometry outside the
// lines handed to it; callers run it after clipping and before
// chaining.
package sketchy
