package aace

import (
	"errors"
	"math"
	"testing"
)

func TestInfo_RejectsUnknownClass(t *testing.T) {
	for _, c := range []Class{0, 6, -1} {
		if _, err := Info(c); !errors.Is(err, ErrInvalidClass) {
			t.Fatalf("Info(%d) err = %v, want ErrInvalidClass", c, err)
		}
	}
}

func TestBandsNarrowTowardClass1(t *testing.T) {
	prog := Progression()
	for i := 1; i < len(prog); i++ {
		wider := MustInfo(prog[i-1])
		narrower := MustInfo(prog[i])

		if narrower.ConfidenceLowPct < wider.ConfidenceLowPct {
			t.Errorf("%s low %.0f below %s low %.0f", prog[i], narrower.ConfidenceLowPct, prog[i-1], wider.ConfidenceLowPct)
		}
		if narrower.ConfidenceHighPct > wider.ConfidenceHighPct {
			t.Errorf("%s high %.0f above %s high %.0f", prog[i], narrower.ConfidenceHighPct, prog[i-1], wider.ConfidenceHighPct)
		}
		if narrower.EngineeringCompletionPct <= wider.EngineeringCompletionPct {
			t.Errorf("%s engineering %.0f not above %s %.0f", prog[i], narrower.EngineeringCompletionPct, prog[i-1], wider.EngineeringCompletionPct)
		}
		if narrower.ContingencyPct >= wider.ContingencyPct {
			t.Errorf("%s contingency %.0f not below %s %.0f", prog[i], narrower.ContingencyPct, prog[i-1], wider.ContingencyPct)
		}
	}
}

func TestInterval_ScenarioBands(t *testing.T) {
	tests := []struct {
		class     Class
		low, high float64
	}{
		{Class5, 500_000, 2_000_000},
		{Class1, 900_000, 1_150_000},
	}
	for _, tt := range tests {
		low, high := MustInfo(tt.class).Interval(1_000_000)
		if math.Abs(low-tt.low) > 1e-6 || math.Abs(high-tt.high) > 1e-6 {
			t.Errorf("%s interval = [%.0f, %.0f], want [%.0f, %.0f]", tt.class, low, high, tt.low, tt.high)
		}
	}
}

func TestProgressionOrder(t *testing.T) {
	prog := Progression()
	want := []Class{Class5, Class4, Class3, Class2, Class1}
	for i := range want {
		if prog[i] != want[i] {
			t.Fatalf("Progression()[%d] = %s, want %s", i, prog[i], want[i])
		}
	}

	prog[0] = Class1
	if Progression()[0] != Class5 {
		t.Fatal("Progression returned a shared slice")
	}
}

func TestNext(t *testing.T) {
	c := Class5
	steps := 0
	for {
		next, ok := c.Next()
		if !ok {
			break
		}
		if next != c-1 {
			t.Fatalf("%s.Next() = %s, want %s", c, next, c-1)
		}
		c = next
		steps++
	}
	if c != Class1 || steps != 4 {
		t.Fatalf("walk ended at %s after %d steps", c, steps)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Class
		wantErr bool
	}{
		{"class_3", Class3, false},
		{"Class 5", Class5, false},
		{"1", Class1, false},
		{"class_0", 0, true},
		{"class_x", 0, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Parse(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if Class4.String() != "class_4" {
		t.Fatalf("String() = %q", Class4.String())
	}
}
