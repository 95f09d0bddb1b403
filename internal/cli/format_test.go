package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatCompactCost(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{950, "$950"},
		{82_500, "$82.5K"},
		{1_350_000, "$1.35M"},
		{2_500_000_000, "$2.50B"},
		{-120_000, "-$120.0K"},
	}
	for _, tt := range tests {
		if got := FormatCompactCost(tt.in); got != tt.want {
			t.Errorf("FormatCompactCost(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "$12.50"},
		{1_080_000, "$1,080,000"},
		{1_234_567.89, "$1,234,568"},
		{-2500, "-$2,500"},
	}
	for _, tt := range tests {
		if got := FormatCost(tt.in); got != tt.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercents(t *testing.T) {
	if got := FormatPercent(0.4); got != "40.0%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatPct(12.34); got != "12.3%" {
		t.Errorf("FormatPct = %q", got)
	}
	if got := FormatSignedPct(35); got != "+35.0%" {
		t.Errorf("FormatSignedPct = %q", got)
	}
	if got := FormatBand(-50, 100); got != "-50% / +100%" {
		t.Errorf("FormatBand = %q", got)
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Errorf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(14); got != "14 days" {
		t.Errorf("FormatDays(14) = %q", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1234 * time.Millisecond, "1.2s"},
		{95 * time.Second, "1m 35s"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderIntervalBar(t *testing.T) {
	bar := RenderIntervalBar(500, 1000, 2000, 2000, 21)
	if n := len([]rune(bar)); n != 21 {
		t.Fatalf("width = %d", n)
	}
	if !strings.ContainsRune(bar, '◆') || !strings.HasSuffix(bar, "┤") {
		t.Fatalf("bar = %q", bar)
	}
	if strings.Index(bar, "├") > strings.Index(bar, "◆") {
		t.Fatalf("low marker after point: %q", bar)
	}
	if RenderIntervalBar(1, 2, 3, 0, 10) != "" {
		t.Fatal("zero scale should render nothing")
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 4, 8}); got != "▁▄█" {
		t.Fatalf("RenderSparkline = %q", got)
	}
	if RenderSparkline(nil) != "" {
		t.Fatal("empty input should render nothing")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Class", "Estimates"},
		Rows:    [][]string{{"Class 5", "120"}, {"---"}, {"Class 1", "40"}},
	})
	for _, want := range []string{"Class", "Estimates", "Class 5", "120", "Class 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if RenderTable(Table{}) != "" {
		t.Fatal("empty table should render nothing")
	}
}
