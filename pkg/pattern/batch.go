package pattern

import (
	"runtime"
	"sync"

	"github.com/inkline-labs/inkline/pkg/geom"
)

// GenerateAll fills every polygon with p, dispatching polygons across
// worker goroutines. The result is indexed like polygons, so cross-
// polygon order is stable regardless of scheduling; within each polygon
// the lines are the same deterministic sequence Generate produces.
// workers <= 0 uses one worker per available CPU.
//
// Generators are pure and polygons are read-only, so the workers share
// nothing but the output slice, each writing only its own index.
func GenerateAll(p Pattern, polygons []geom.Polygon, spacing, angleDeg float64, opts Options, workers int) [][]geom.Line {
	n := len(polygons)
	out := make([][]geom.Line, n)
	if n == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := range polygons {
			out[i] = Generate(p, polygons[i], spacing, angleDeg, opts)
		}
		return out
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = Generate(p, polygons[i], spacing, angleDeg, opts)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}
