package model

import "testing"

func TestProjectBaseCost(t *testing.T) {
	p := Project{BudgetMin: 800_000, BudgetMax: 1_200_000, RegionalCostMultiplier: 1.25}
	if got := p.BaseCost(); got != 1_000_000 {
		t.Fatalf("BaseCost() = %.2f, want 1000000", got)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.005, 1.01},
		{2.344, 2.34},
		{-3.456, -3.46},
		{1234567.891, 1234567.89},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundOnePlace(t *testing.T) {
	if got := Round(4.25, 1); got != 4.3 {
		t.Fatalf("Round(4.25, 1) = %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 100) != 0 || Clamp(101, 0, 100) != 100 || Clamp(50, 0, 100) != 50 {
		t.Fatal("Clamp out of bounds")
	}
}

func TestBreakdownSum(t *testing.T) {
	b := Breakdown{Labor: 1, Materials: 2, Equipment: 3, Subcontractor: 4, Overhead: 5, Profit: 6}
	if b.Sum() != 21 {
		t.Fatalf("Sum() = %v", b.Sum())
	}
}
