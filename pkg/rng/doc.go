// Package rng derives the deterministic random streams consumed by the
// randomized fill generators (Scribble, Stipple, Truchet, Harmonograph)
// and the sketchy filter.
//
// A fill job has one master seed. Every randomized call site derives its
// own Stream from that seed, a call-site label, and the invocation's
// tunable parameters, so:
//
//   - the same document replays byte-identically run after run,
//   - two polygons filled with the same pattern draw from unrelated
//     streams when their labels differ (the fill generators label a
//     stream by pattern and polygon ID, so polygons sharing an ID, or
//     both without one, share a stream), and
//   - changing spacing, angle, or roughness re-rolls the randomness
//     instead of replaying a stale sequence against new geometry.
//
// Streams are not safe for concurrent use. Derive one Stream per
// invocation before fanning polygons out across goroutines; nothing in
// this package holds shared state, so per-polygon parallelism needs no
// coordination beyond that.
package rng
