// Package plotdoc defines the on-disk configuration for a plot job: the
// polygons to fill, the fill pattern and its parameters, and the
// post-processing stages (sketchy perturbation, ordering, chaining)
// applied before emission. Documents are loaded by pkg/ingest and
// validated before any pattern generator runs.
package plotdoc
