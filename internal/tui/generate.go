// Package tui implements the interactive terminal views: the generate
// progress screen and the setup form.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/constructioncheck/ccgen/internal/cli"
	"github.com/constructioncheck/ccgen/internal/pipeline"
	"github.com/constructioncheck/ccgen/internal/tui/components"
	"github.com/constructioncheck/ccgen/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunFunc executes a pipeline run, reporting progress through the callback.
type RunFunc func(ctx context.Context, progress pipeline.ProgressFunc) (*pipeline.Result, error)

// ProgressMsg carries one pipeline event into the UI.
type ProgressMsg pipeline.Event

// DoneMsg is sent when the run returns.
type DoneMsg struct {
	Result *pipeline.Result
	Err    error
}

// Generate is the bubbletea model for the generate progress screen.
type Generate struct {
	ctx    context.Context
	cancel context.CancelFunc
	run    RunFunc
	sub    chan tea.Msg

	spinner  spinner.Model
	steps    []pipeline.Entity
	rows     map[pipeline.Entity]int
	current  int
	finished int

	result      *pipeline.Result
	err         error
	interrupted bool
	width       int
}

// NewGenerate builds the progress model. Cancelling from the keyboard
// cancels ctx; the run then stops at its next step boundary.
func NewGenerate(ctx context.Context, run RunFunc) Generate {
	ctx, cancel := context.WithCancel(ctx)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Generate{
		ctx:     ctx,
		cancel:  cancel,
		run:     run,
		sub:     make(chan tea.Msg, 2*len(pipeline.Entities)+1),
		spinner: sp,
		steps:   pipeline.Entities,
		rows:    make(map[pipeline.Entity]int, len(pipeline.Entities)),
		current: -1,
		width:   80,
	}
}

// Init implements tea.Model.
func (g Generate) Init() tea.Cmd {
	return tea.Batch(g.spinner.Tick, startRunCmd(g.ctx, g.run, g.sub))
}

// startRunCmd launches the pipeline in a goroutine and returns the first
// message it produces. The channel is sized for every event of a run, so
// the progress callback never blocks.
func startRunCmd(ctx context.Context, run RunFunc, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			res, err := run(ctx, func(ev pipeline.Event) {
				select {
				case sub <- ProgressMsg(ev):
				default:
				}
			})
			sub <- DoneMsg{Result: res, Err: err}
		}()
		return <-sub
	}
}

// waitForRunMsg blocks until the next message arrives from the run goroutine.
func waitForRunMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// Update implements tea.Model.
func (g Generate) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		return g, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			g.interrupted = true
			g.cancel()
		}
		return g, nil

	case ProgressMsg:
		g.current = msg.Index
		if msg.Done {
			g.rows[msg.Entity] = msg.Rows
			g.finished = msg.Index + 1
		}
		return g, waitForRunMsg(g.sub)

	case DoneMsg:
		g.result = msg.Result
		g.err = msg.Err
		g.cancel()
		return g, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return g, cmd
	}
	return g, nil
}

// Result returns the outcome once the program has exited.
func (g Generate) Result() (*pipeline.Result, error) {
	return g.result, g.err
}

// Interrupted reports whether the user cancelled the run.
func (g Generate) Interrupted() bool {
	return g.interrupted
}

func (g Generate) done() bool {
	return g.result != nil || g.err != nil
}

// View implements tea.Model.
func (g Generate) View() string {
	t := theme.Active

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	spinnerStyle := lipgloss.NewStyle().Foreground(t.Accent)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 3)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ ccgen"))
	b.WriteString(subtitleStyle.Render(" · Construction Check demo data"))
	b.WriteString("\n\n")

	switch {
	case g.err != nil:
		b.WriteString(errStyle.Render("✗ " + g.err.Error()))
	case g.result != nil:
		b.WriteString(okStyle.Render("✓ Done in " + cli.FormatElapsed(g.result.Elapsed)))
	case g.current >= 0:
		b.WriteString(spinnerStyle.Render(g.spinner.View()))
		b.WriteString(subtitleStyle.Render(fmt.Sprintf(" Generating %s", g.steps[g.current])))
	default:
		b.WriteString(spinnerStyle.Render(g.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Preparing store..."))
	}
	b.WriteString("\n\n")

	barW := min(40, max(20, g.width-30))
	b.WriteString(components.ProgressBar(float64(g.finished)/float64(len(g.steps)), barW))
	b.WriteString("\n\n")

	for i, ent := range g.steps {
		b.WriteString(components.StepLine(string(ent), g.rows[ent], g.stepState(i), 12))
		b.WriteString("\n")
	}

	if g.result != nil {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s of %s projects received a progressive sequence",
			cli.FormatNumber(int64(g.result.Progressive)),
			cli.FormatNumber(int64(len(g.result.Dataset.Projects))))))
	} else if !g.done() {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("q to cancel"))
	}

	return cardStyle.Render(b.String()) + "\n"
}

func (g Generate) stepState(i int) components.StepState {
	switch {
	case i < g.finished:
		return components.StepDone
	case i == g.current && g.err != nil:
		return components.StepFailed
	case i == g.current && !g.done():
		return components.StepRunning
	default:
		return components.StepPending
	}
}
