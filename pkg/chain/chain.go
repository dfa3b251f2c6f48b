package chain

import "github.com/inkline-labs/inkline/pkg/geom"

// Config controls the chaining pass.
type Config struct {
	// Tolerance is the maximum endpoint gap that may be bridged when
	// joining two segments into one chain.
	Tolerance float64
}

// Chain is an ordered sequence of points forming a connected polyline.
type Chain []geom.Point

// Length returns the total length of the chain's segments.
func (c Chain) Length() float64 {
	total := 0.0
	for i := 1; i < len(c); i++ {
		total += c[i-1].Distance(c[i])
	}
	return total
}

// Stats summarizes a chaining pass.
type Stats struct {
	InputLines   int
	OutputChains int
	TotalLength  float64
}

// Chain greedily merges lines sharing endpoints within cfg.Tolerance into
// connected polylines. Every input line contributes exactly one segment
// to exactly one output chain; no geometry is created or discarded beyond
// endpoint snapping within tolerance.
func Chain(lines []geom.Line, cfg Config) ([]Chain, Stats) {
	n := len(lines)
	used := make([]bool, n)
	var chains []Chain

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		used[i] = true
		points := []geom.Point{lines[i].Start(), lines[i].End()}

		for {
			extended := false

			back := points[len(points)-1]
			if idx, rev, ok := nearestUnused(lines, used, back, cfg.Tolerance); ok {
				used[idx] = true
				if rev {
					points = append(points, lines[idx].Start())
				} else {
					points = append(points, lines[idx].End())
				}
				extended = true
			}

			front := points[0]
			if idx, rev, ok := nearestUnused(lines, used, front, cfg.Tolerance); ok {
				used[idx] = true
				var next geom.Point
				if rev {
					next = lines[idx].Start()
				} else {
					next = lines[idx].End()
				}
				points = append([]geom.Point{next}, points...)
				extended = true
			}

			if !extended {
				break
			}
		}

		chains = append(chains, Chain(points))
	}

	stats := Stats{InputLines: n, OutputChains: len(chains)}
	for _, c := range chains {
		stats.TotalLength += c.Length()
	}
	return chains, stats
}

// nearestUnused finds the unused line with an endpoint closest to anchor,
// within tolerance. rev reports whether the line's Start (true) or End
// (false) is the end that should be appended next (i.e. the endpoint NOT
// matched to anchor).
func nearestUnused(lines []geom.Line, used []bool, anchor geom.Point, tolerance float64) (idx int, rev bool, ok bool) {
	bestDist := tolerance
	bestIdx := -1
	bestRev := false

	for j, l := range lines {
		if used[j] {
			continue
		}
		if d := anchor.Distance(l.Start()); d <= bestDist {
			bestDist, bestIdx, bestRev = d, j, false
		}
		if d := anchor.Distance(l.End()); d <= bestDist {
			bestDist, bestIdx, bestRev = d, j, true
		}
	}
	if bestIdx < 0 {
		return 0, false, false
	}
	return bestIdx, bestRev, true
}
