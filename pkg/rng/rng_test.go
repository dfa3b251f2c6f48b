package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"
)

func TestNewDeterminism(t *testing.T) {
	s1 := New(123456789, "Stipple/polygon-0", 10, 0)
	s2 := New(123456789, "Stipple/polygon-0", 10, 0)

	if s1.Seed() != s2.Seed() {
		t.Errorf("same inputs produced different seeds: %d vs %d", s1.Seed(), s2.Seed())
	}
	for i := 0; i < 100; i++ {
		v1, v2 := s1.Float64(), s2.Float64()
		if v1 != v2 {
			t.Fatalf("iteration %d: same streams diverged: %f vs %f", i, v1, v2)
		}
	}
}

func TestNewDifferentLabels(t *testing.T) {
	scribble := New(42, "Scribble/polygon-0", 10, 0)
	stipple := New(42, "Stipple/polygon-0", 10, 0)
	truchet := New(42, "Truchet/polygon-0", 10, 0)

	if scribble.Seed() == stipple.Seed() || scribble.Seed() == truchet.Seed() ||
		stipple.Seed() == truchet.Seed() {
		t.Error("different labels produced identical derived seeds")
	}
	if scribble.Label() != "Scribble/polygon-0" {
		t.Errorf("label not preserved: got %s", scribble.Label())
	}
}

func TestNewDifferentParams(t *testing.T) {
	s1 := New(42, "Truchet/polygon-0", 10, 0)
	s2 := New(42, "Truchet/polygon-0", 12, 0)
	s3 := New(42, "Truchet/polygon-0", 10, 45)

	if s1.Seed() == s2.Seed() || s1.Seed() == s3.Seed() {
		t.Error("different parameters produced identical derived seeds")
	}
}

func TestNewDifferentMasterSeeds(t *testing.T) {
	s1 := New(111, "Stipple/polygon-0", 10)
	s2 := New(222, "Stipple/polygon-0", 10)

	if s1.Seed() == s2.Seed() {
		t.Error("different master seeds produced identical derived seeds")
	}
}

// Sub-milli-unit float noise must not re-roll a stream; a visible
// parameter change must.
func TestNewQuantizesParams(t *testing.T) {
	base := New(42, "Stipple/polygon-0", 10, 30)
	noisy := New(42, "Stipple/polygon-0", 10+1e-9, 30-1e-9)
	shifted := New(42, "Stipple/polygon-0", 10.002, 30)

	if base.Seed() != noisy.Seed() {
		t.Error("sub-milli-unit noise changed the derived seed")
	}
	if base.Seed() == shifted.Seed() {
		t.Error("a milli-unit parameter change did not change the derived seed")
	}
}

func TestNewNonFiniteParamsAreSafe(t *testing.T) {
	s := New(42, "Stipple/polygon-0", math.NaN(), math.Inf(1))
	if v := s.Float64(); v < 0 || v >= 1 {
		t.Fatalf("stream with non-finite params produced out-of-range value %f", v)
	}
}

func TestInBoundsAndDeterminism(t *testing.T) {
	s1 := New(42, "test")
	s2 := New(42, "test")

	for i := 0; i < 100; i++ {
		v1, v2 := s1.In(5, 10), s2.In(5, 10)
		if v1 < 5 || v1 >= 10 {
			t.Fatalf("In(5, 10) out of range: %f", v1)
		}
		if v1 != v2 {
			t.Fatalf("iteration %d: In not deterministic: %f vs %f", i, v1, v2)
		}
	}
}

func TestInDegenerateBounds(t *testing.T) {
	s := New(42, "test")
	if v := s.In(7, 7); v != 7 {
		t.Errorf("In(7, 7) = %f, want 7", v)
	}
	if v := s.In(10, 5); v != 10 {
		t.Errorf("In(10, 5) = %f, want 10", v)
	}
}

func TestAngleRange(t *testing.T) {
	s := New(42, "test")
	for i := 0; i < 100; i++ {
		a := s.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle out of range: %f", a)
		}
	}
}

func TestPickRange(t *testing.T) {
	s := New(42, "test")
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		v := s.Pick(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Pick(5) out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) < 2 {
		t.Error("Pick(5) produced a single value across 200 draws (extremely unlikely)")
	}
	if v := s.Pick(1); v != 0 {
		t.Errorf("Pick(1) = %d, want 0", v)
	}
	if v := s.Pick(0); v != 0 {
		t.Errorf("Pick(0) = %d, want 0", v)
	}
}

func TestBoolProducesBothValues(t *testing.T) {
	s1 := New(42, "test")
	s2 := New(42, "test")

	trueCount := 0
	for i := 0; i < 100; i++ {
		v1, v2 := s1.Bool(), s2.Bool()
		if v1 != v2 {
			t.Fatalf("iteration %d: Bool not deterministic", i)
		}
		if v1 {
			trueCount++
		}
	}
	if trueCount == 0 || trueCount == 100 {
		t.Error("Bool produced only one value across 100 draws (extremely unlikely)")
	}
}

// TestSubSeedDerivationFormula pins the exact derivation so a refactor
// cannot silently change every seeded pattern's output.
func TestSubSeedDerivationFormula(t *testing.T) {
	masterSeed := uint64(123456789)
	label := "Scribble/polygon-7"

	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(label))
	binary.BigEndian.PutUint64(buf[:], uint64(int64(10*1000)))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(int64(45*1000)))
	h.Write(buf[:])
	expected := binary.BigEndian.Uint64(h.Sum(nil)[:8])

	s := New(masterSeed, label, 10, 45)
	if s.Seed() != expected {
		t.Errorf("derived seed mismatch: got %d, want %d", s.Seed(), expected)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(123456789, "Stipple/polygon-0", 10, 0)
	}
}

func BenchmarkIn(b *testing.B) {
	s := New(123456789, "bench")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.In(0, 1)
	}
}
