// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatCompactCost formats a USD amount with a magnitude suffix.
// e.g., 1350000 -> "$1.35M", 82500 -> "$82.5K", 950 -> "$950"
func FormatCompactCost(cost float64) string {
	abs := math.Abs(cost)
	sign := ""
	if cost < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%s$%.2fB", sign, abs/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%s$%.2fM", sign, abs/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s$%.1fK", sign, abs/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, abs)
	}
}

// FormatCost formats a USD cost value with thousands separators.
func FormatCost(cost float64) string {
	if cost < 0 {
		return "-" + FormatCost(-cost)
	}
	if cost >= 1000 {
		return "$" + FormatNumber(int64(math.Round(cost)))
	}
	return fmt.Sprintf("$%.2f", cost)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatPct formats a value already expressed in percent.
func FormatPct(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatSignedPct formats a percent with an explicit sign.
// e.g., 35 -> "+35.0%", -12.5 -> "-12.5%"
func FormatSignedPct(p float64) string {
	return fmt.Sprintf("%+.1f%%", p)
}

// FormatBand formats an AACE accuracy band such as "-50% / +100%".
func FormatBand(low, high float64) string {
	return fmt.Sprintf("%.0f%% / %+.0f%%", low, high)
}

// FormatDate formats a timestamp as a calendar date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// FormatDays formats a whole number of days, e.g. 1 -> "1 day", 14 -> "14 days".
func FormatDays(days int) string {
	if days == 1 || days == -1 {
		return fmt.Sprintf("%d day", days)
	}
	return fmt.Sprintf("%d days", days)
}

// FormatElapsed formats a run duration.
// e.g., 1.234s -> "1.2s", 250ms -> "250ms"
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}
