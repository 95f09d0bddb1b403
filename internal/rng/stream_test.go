package rng

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSameSeedSameDraws(t *testing.T) {
	a := New(42, Projects)
	b := New(42, Projects)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d diverged: %v vs %v", i, x, y)
		}
	}
	if a.UUID() != b.UUID() {
		t.Fatal("UUIDs diverged for the same seed")
	}
	if a.LogNormal(13, 1.2) != b.LogNormal(13, 1.2) {
		t.Fatal("LogNormal diverged for the same seed")
	}
	if a.Faker().Company() != b.Faker().Company() {
		t.Fatal("Faker diverged for the same seed")
	}
}

func TestStreamsAreIndependent(t *testing.T) {
	a := New(42, Businesses)
	b := New(42, Estimators)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 20 {
		t.Fatal("different stream ids produced identical draws")
	}
}

func TestIntRangeInclusive(t *testing.T) {
	s := New(1, Estimates)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.IntRange(7, 21)
		if v < 7 || v > 21 {
			t.Fatalf("IntRange(7,21) = %d", v)
		}
		seen[v] = true
	}
	if !seen[7] || !seen[21] {
		t.Fatalf("endpoints never drawn: %v", seen)
	}
	if got := s.IntRange(5, 5); got != 5 {
		t.Fatalf("IntRange(5,5) = %d", got)
	}
}

func TestUniformBounds(t *testing.T) {
	s := New(3, Estimates)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(-0.5, 1.0)
		if v < -0.5 || v >= 1.0 {
			t.Fatalf("Uniform = %v", v)
		}
	}
}

func TestBetaScaledRange(t *testing.T) {
	s := New(5, Reviews)
	for i := 0; i < 500; i++ {
		v := s.Beta(8, 2)*4 + 1
		if v < 1 || v > 5 {
			t.Fatalf("scaled beta = %v", v)
		}
	}
}

func TestSampleDistinct(t *testing.T) {
	s := New(9, Estimates)
	items := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 100; i++ {
		got := Sample(s, items, 3)
		if len(got) != 3 {
			t.Fatalf("len = %d", len(got))
		}
		seen := map[string]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("duplicate %q in %v", v, got)
			}
			seen[v] = true
		}
	}
	if got := Sample(s, items[:2], 3); len(got) != 2 {
		t.Fatalf("oversized sample len = %d, want 2", len(got))
	}
}

func TestWeightedSkipsZeroWeight(t *testing.T) {
	s := New(11, Projects)
	items := []string{"never", "always"}
	for i := 0; i < 500; i++ {
		if got := Weighted(s, items, []float64{0, 1}); got != "always" {
			t.Fatalf("Weighted returned %q", got)
		}
	}
}

func TestUUIDVersion4(t *testing.T) {
	s := New(13, Businesses)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		raw := s.UUID()
		id, err := uuid.Parse(raw)
		if err != nil {
			t.Fatalf("uuid.Parse(%q): %v", raw, err)
		}
		if id.Version() != 4 {
			t.Fatalf("version = %d", id.Version())
		}
		if seen[raw] {
			t.Fatalf("duplicate id %s", raw)
		}
		seen[raw] = true
	}
}

func TestBetween(t *testing.T) {
	s := New(17, Projects)
	start := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		v := s.Between(start, end)
		if v.Before(start) || !v.Before(end) {
			t.Fatalf("Between = %v", v)
		}
	}
	if got := s.Between(end, start); !got.Equal(end) {
		t.Fatalf("reversed range = %v, want start", got)
	}
}
