package config

import "testing"

func TestDefaultRegions_Multiplier(t *testing.T) {
	tests := []struct {
		code string
		want float64
	}{
		{"NY", 1.35},
		{"ny", 1.35},
		{" HI ", 2.00},
		{"TX", 1.00},
		{"IN", 0.88},
		{"ZZ", DefaultRegionalMultiplier},
		{"", DefaultRegionalMultiplier},
	}
	for _, tt := range tests {
		if got := DefaultRegions().Multiplier(tt.code); got != tt.want {
			t.Errorf("Multiplier(%q) = %.2f, want %.2f", tt.code, got, tt.want)
		}
	}
}

func TestNewRegionTable_Overrides(t *testing.T) {
	table, err := NewRegionTable(map[string]float64{"ny": 1.40, "AK": 1.75})
	if err != nil {
		t.Fatalf("NewRegionTable: %v", err)
	}
	if got := table.Multiplier("NY"); got != 1.40 {
		t.Fatalf("NY = %.2f, want override 1.40", got)
	}
	if !table.Known("AK") {
		t.Fatal("AK override missing")
	}
	if DefaultRegions().Multiplier("NY") != 1.35 {
		t.Fatal("override leaked into the built-in table")
	}
	if len(table.Codes()) != len(DefaultRegions().Codes())+1 {
		t.Fatalf("Codes() = %v", table.Codes())
	}
}

func TestNewRegionTable_RejectsNonPositive(t *testing.T) {
	if _, err := NewRegionTable(map[string]float64{"NY": -1}); err == nil {
		t.Fatal("expected error for negative multiplier")
	}
}

func TestCodesSorted(t *testing.T) {
	codes := DefaultRegions().Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	if len(codes) != 20 {
		t.Fatalf("len(codes) = %d, want 20", len(codes))
	}
}
