// Package components holds small lipgloss widgets shared by the TUI views.
package components

import (
	"fmt"

	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepState is the state of one pipeline step in the progress list.
type StepState int

const (
	StepPending StepState = iota
	StepRunning
	StepDone
	StepFailed
)

// ProgressBar renders a solid bar followed by a percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = clamp01(pct)

	bar := progress.New(
		progress.WithSolidFill(string(ColorForPct(pct))),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(ColorForPct(pct)).Bold(true)
	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// ColorForPct moves from accent to green as a run completes.
func ColorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Green
	case pct >= 0.5:
		return t.AccentBright
	default:
		return t.Accent
	}
}

// StepLine renders one entity row: a state marker, the label and its row count.
func StepLine(label string, rows int, state StepState, labelW int) string {
	t := theme.Active

	var marker string
	var color lipgloss.Color
	switch state {
	case StepDone:
		marker, color = "✓", t.Green
	case StepRunning:
		marker, color = "›", t.Accent
	case StepFailed:
		marker, color = "✗", t.Red
	default:
		marker, color = "·", t.TextDim
	}

	markerStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	line := markerStyle.Render(marker) + " " + labelStyle.Render(fmt.Sprintf("%-*s", labelW, label))
	if state == StepDone {
		line += " " + countStyle.Render(fmt.Sprintf("%8s", cli.FormatNumber(int64(rows))))
	}
	return line
}

func clamp01(f float64) float64 {
	return max(0, min(1, f))
}
