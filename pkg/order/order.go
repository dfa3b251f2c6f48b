package order

import (
	"math"

	"github.com/inkline-labs/inkline/pkg/geom"
)

// Strategy selects how Order sequences polygons.
type Strategy int

const (
	// Document returns polygons in their original input order.
	Document Strategy = iota
	// NearestNeighbor starts at polygon 0 and greedily walks to the
	// unused polygon whose bbox centroid is closest to the last one
	// visited, breaking ties by lowest index.
	NearestNeighbor
)

// Report summarizes the ordering decision as a plotting diagnostic.
type Report struct {
	DocumentTravel float64 // total centroid-to-centroid travel in document order
	OrderedTravel  float64 // total centroid-to-centroid travel in the returned order
	Reduction      float64 // 1 - OrderedTravel/DocumentTravel; 0 if DocumentTravel is 0
}

// Order returns a permutation of [0, len(polygons)) per strategy, along
// with a travel report computed against the document-order baseline.
func Order(polygons []geom.Polygon, strategy Strategy) ([]int, Report) {
	n := len(polygons)
	if n == 0 {
		return nil, Report{}
	}
	centroids := make([]geom.Point, n)
	for i, p := range polygons {
		centroids[i] = p.Center()
	}

	docOrder := make([]int, n)
	for i := range docOrder {
		docOrder[i] = i
	}
	docTravel := travel(centroids, docOrder)

	var result []int
	switch strategy {
	case NearestNeighbor:
		result = nearestNeighborOrder(centroids)
	default:
		result = docOrder
	}

	orderedTravel := travel(centroids, result)
	reduction := 0.0
	if docTravel > 0 {
		reduction = 1 - orderedTravel/docTravel
	}

	return result, Report{
		DocumentTravel: docTravel,
		OrderedTravel:  orderedTravel,
		Reduction:      reduction,
	}
}

func nearestNeighborOrder(centroids []geom.Point) []int {
	n := len(centroids)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	current := 0
	visited[0] = true
	order = append(order, current)

	for len(order) < n {
		best := -1
		bestDist := math.Inf(1)
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d := centroids[current].Distance(centroids[i])
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
		visited[best] = true
		order = append(order, best)
		current = best
	}
	return order
}

func travel(centroids []geom.Point, order []int) float64 {
	total := 0.0
	for i := 1; i < len(order); i++ {
		total += centroids[order[i-1]].Distance(centroids[order[i]])
	}
	return total
}
