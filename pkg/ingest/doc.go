// Package ingest loads a plotdoc.Document from YAML or JSON, wrapping
// decode errors distinctly from structural validation errors so callers
// can tell a malformed file apart from a well-formed but invalid one.
package ingest
