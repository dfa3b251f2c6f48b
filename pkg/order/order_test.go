package order_test

import (
	"testing"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/order"
)

func square(centerX float64) geom.Polygon {
	return geom.Polygon{
		Outer: geom.Ring{
			{X: centerX - 1, Y: -1}, {X: centerX + 1, Y: -1},
			{X: centerX + 1, Y: 1}, {X: centerX - 1, Y: 1},
		},
	}
}

func TestOrderDocumentIsIdentity(t *testing.T) {
	polys := []geom.Polygon{square(0), square(10), square(20)}
	idx, report := order.Order(polys, order.Document)
	want := []int{0, 1, 2}
	for i, v := range want {
		if idx[i] != v {
			t.Fatalf("document order mismatch: got %v want %v", idx, want)
		}
	}
	if report.Reduction != 0 {
		t.Fatalf("document order should have zero reduction, got %f", report.Reduction)
	}
}

func TestOrderSinglePolygon(t *testing.T) {
	idx, _ := order.Order([]geom.Polygon{square(0)}, order.NearestNeighbor)
	if len(idx) != 1 || idx[0] != 0 {
		t.Fatalf("expected [0], got %v", idx)
	}
}

func TestOrderNearestNeighborMatchesScenario(t *testing.T) {
	polys := []geom.Polygon{square(0), square(100), square(10), square(90)}
	idx, report := order.Order(polys, order.NearestNeighbor)

	want := []int{0, 2, 3, 1}
	for i, v := range want {
		if idx[i] != v {
			t.Fatalf("nearest-neighbor order mismatch: got %v want %v", idx, want)
		}
	}
	if report.Reduction < 0.5 {
		t.Fatalf("expected substantial travel reduction, got %f", report.Reduction)
	}
}

func TestOrderIsPermutation(t *testing.T) {
	polys := []geom.Polygon{square(0), square(5), square(-5), square(50), square(-50)}
	idx, _ := order.Order(polys, order.NearestNeighbor)
	seen := make(map[int]bool)
	for _, v := range idx {
		if seen[v] {
			t.Fatalf("index %d repeated in %v", v, idx)
		}
		seen[v] = true
	}
	if len(seen) != len(polys) {
		t.Fatalf("expected permutation of length %d, got %d entries", len(polys), len(seen))
	}
}
