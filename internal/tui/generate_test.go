package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/pipeline"
)

func fakeRun(events int, err error) RunFunc {
	return func(_ context.Context, progress pipeline.ProgressFunc) (*pipeline.Result, error) {
		for i := range events {
			ent := pipeline.Entities[i]
			progress(pipeline.Event{Entity: ent, Index: i, Total: len(pipeline.Entities)})
			progress(pipeline.Event{Entity: ent, Index: i, Total: len(pipeline.Entities), Rows: 10 * (i + 1), Done: true})
		}
		if err != nil {
			return nil, err
		}
		return &pipeline.Result{
			Dataset:     model.Dataset{Projects: make([]model.Project, 40)},
			Progressive: 16,
		}, nil
	}
}

// drain feeds every message from the run goroutine through Update until the
// model asks to quit.
func drain(t *testing.T, g Generate) Generate {
	t.Helper()
	msg := startRunCmd(g.ctx, g.run, g.sub)()
	for range 100 {
		m, cmd := g.Update(msg)
		g = m.(Generate)
		if cmd == nil {
			t.Fatalf("no follow-up command after %T", msg)
		}
		next := cmd()
		if _, ok := next.(tea.QuitMsg); ok {
			return g
		}
		msg = next
	}
	t.Fatal("run never finished")
	return g
}

func TestGenerate_CompletesRun(t *testing.T) {
	g := drain(t, NewGenerate(context.Background(), fakeRun(len(pipeline.Entities), nil)))

	res, err := g.Result()
	if err != nil || res == nil {
		t.Fatalf("Result = %v, %v", res, err)
	}
	if g.finished != len(pipeline.Entities) {
		t.Fatalf("finished = %d, want %d", g.finished, len(pipeline.Entities))
	}
	if g.rows[pipeline.Reviews] != 60 {
		t.Fatalf("review rows = %d, want 60", g.rows[pipeline.Reviews])
	}

	view := g.View()
	for _, want := range []string{"Done in", "16 of 40 projects", "reviews"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGenerate_ReportsFailure(t *testing.T) {
	boom := errors.New("persist projects: disk full")
	g := drain(t, NewGenerate(context.Background(), fakeRun(3, boom)))

	if _, err := g.Result(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if g.finished != 3 {
		t.Fatalf("finished = %d, want 3", g.finished)
	}
	if !strings.Contains(g.View(), "disk full") {
		t.Error("view does not show the error")
	}
}

func TestGenerate_KeyCancelsContext(t *testing.T) {
	g := NewGenerate(context.Background(), fakeRun(0, nil))
	m, _ := g.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	g = m.(Generate)

	if !g.Interrupted() {
		t.Fatal("ctrl+c not recorded")
	}
	if g.ctx.Err() == nil {
		t.Fatal("context not cancelled")
	}
}

func TestGenerate_ViewBeforeFirstEvent(t *testing.T) {
	g := NewGenerate(context.Background(), fakeRun(0, nil))
	if !strings.Contains(g.View(), "Preparing store") {
		t.Error("initial view should show the preparing state")
	}
}
