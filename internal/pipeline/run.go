// Package pipeline runs the generators in dependency order and persists
// each entity type through a store.Sink.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/constructioncheck/ccgen/internal/config"
	"github.com/constructioncheck/ccgen/internal/generate"
	"github.com/constructioncheck/ccgen/internal/logging"
	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/rng"
	"github.com/constructioncheck/ccgen/internal/store"
)

// Entity names a generated table.
type Entity string

const (
	Businesses Entity = "businesses"
	Estimators Entity = "estimators"
	Expertise  Entity = "expertise"
	Projects   Entity = "projects"
	Estimates  Entity = "estimates"
	Reviews    Entity = "reviews"
)

// Entities lists every entity in generation (and foreign-key) order.
var Entities = []Entity{Businesses, Estimators, Expertise, Projects, Estimates, Reviews}

// Phase is the stage of a step.
type Phase string

const (
	PhaseBegin    Phase = "begin"
	PhaseReset    Phase = "reset"
	PhaseGenerate Phase = "generate"
	PhasePersist  Phase = "persist"
	PhaseCommit   Phase = "commit"
)

// Event reports progress. Done is false when an entity starts and true once
// it has been generated and persisted.
type Event struct {
	Entity Entity
	Index  int // position in Entities
	Total  int
	Rows   int
	Done   bool
}

// ProgressFunc receives progress events in order.
type ProgressFunc func(Event)

// Options tunes a run.
type Options struct {
	// Reset clears the sink before writing.
	Reset    bool
	Progress ProgressFunc
	// Logger defaults to the logger carried by the run context.
	Logger *slog.Logger
}

// Result is the outcome of a run.
type Result struct {
	Dataset     model.Dataset
	Progressive int // projects that received a progressive sequence
	Elapsed     time.Duration
}

type step struct {
	entity   Entity
	generate func() (int, error)
	persist  func(ctx context.Context, sink store.Sink) error
}

// Run generates a complete dataset from cfg and writes it to sink in one
// unit of work. A nil sink generates in memory only. Any failure stops the
// run, rolls the sink back to its state before the run, and is returned as
// a *StepError; the partial dataset is returned alongside it.
func Run(ctx context.Context, cfg config.Config, sink store.Sink, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	regions, err := cfg.RegionTable()
	if err != nil {
		return nil, err
	}
	start, end, err := cfg.Generation.Window()
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logging.FromContext(ctx)
	}
	began := time.Now()

	committed := false
	if sink != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := sink.Begin(ctx); err != nil {
			return nil, &StepError{Phase: PhaseBegin, Err: err}
		}
		defer func() {
			if committed {
				return
			}
			// The run context may already be canceled.
			if err := sink.Rollback(context.WithoutCancel(ctx)); err != nil {
				log.Error("rollback failed", "err", err)
				return
			}
			log.Warn("run rolled back")
		}()
	}

	res, err := runSteps(ctx, cfg, regions, generate.Window{Start: start, End: end}, sink, opts, log)
	if err != nil {
		return res, err
	}
	if sink != nil {
		if err := sink.Commit(ctx); err != nil {
			return res, &StepError{Phase: PhaseCommit, Err: err}
		}
		committed = true
	}
	return finish(res, cfg, began, log), nil
}

func runSteps(ctx context.Context, cfg config.Config, regions config.RegionTable, w generate.Window, sink store.Sink, opts Options, log *slog.Logger) (*Result, error) {
	if sink != nil && opts.Reset {
		if err := sink.Reset(ctx); err != nil {
			return nil, &StepError{Phase: PhaseReset, Err: err}
		}
		log.Debug("store reset")
	}

	res := &Result{}
	steps := plan(cfg.Generation, regions, w, res)

	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		emit(opts.Progress, Event{Entity: st.entity, Index: i, Total: len(steps)})

		rows, err := st.generate()
		if err != nil {
			return res, &StepError{Phase: PhaseGenerate, Entity: st.entity, Err: err}
		}
		if sink != nil {
			if err := st.persist(ctx, sink); err != nil {
				return res, &StepError{Phase: PhasePersist, Entity: st.entity, Err: err}
			}
		}

		log.Info("generated", "entity", string(st.entity), "rows", rows)
		emit(opts.Progress, Event{Entity: st.entity, Index: i, Total: len(steps), Rows: rows, Done: true})
	}
	return res, nil
}

func finish(res *Result, cfg config.Config, began time.Time, log *slog.Logger) *Result {
	res.Elapsed = time.Since(began)
	log.Info("generation complete",
		"seed", cfg.Generation.Seed,
		"projects", len(res.Dataset.Projects),
		"estimates", len(res.Dataset.Estimates),
		"progressive", res.Progressive,
		"elapsed", res.Elapsed.Round(time.Millisecond),
	)
	return res
}

// Generate builds a dataset in memory.
func Generate(ctx context.Context, cfg config.Config) (*Result, error) {
	return Run(ctx, cfg, nil, Options{Logger: slog.New(slog.DiscardHandler)})
}

// plan wires each generator to its own random stream and to the outputs of
// the steps before it.
func plan(g config.GenerationConfig, regions config.RegionTable, w generate.Window, res *Result) []step {
	ds := &res.Dataset
	seed := g.Seed
	params := generate.EstimateParams{ProgressiveRate: g.ProgressiveRate, MaxSequence: g.MaxSequence}

	return []step{
		{
			entity: Businesses,
			generate: func() (n int, err error) {
				ds.Businesses, err = generate.Businesses(rng.New(seed, rng.Businesses), g.Businesses, w)
				return len(ds.Businesses), err
			},
			persist: func(ctx context.Context, s store.Sink) error { return s.InsertBusinesses(ctx, ds.Businesses) },
		},
		{
			entity: Estimators,
			generate: func() (n int, err error) {
				ds.Estimators, err = generate.Estimators(rng.New(seed, rng.Estimators), g.Consultants, g.Freelancers, w)
				return len(ds.Estimators), err
			},
			persist: func(ctx context.Context, s store.Sink) error { return s.InsertEstimators(ctx, ds.Estimators) },
		},
		{
			entity: Expertise,
			generate: func() (n int, err error) {
				ds.Expertise, err = generate.Expertise(rng.New(seed, rng.Expertise), ds.Estimators, w)
				return len(ds.Expertise), err
			},
			persist: func(ctx context.Context, s store.Sink) error { return s.InsertExpertise(ctx, ds.Expertise) },
		},
		{
			entity: Projects,
			generate: func() (n int, err error) {
				ds.Projects, err = generate.Projects(rng.New(seed, rng.Projects), ds.Businesses, regions, g.Projects, w)
				return len(ds.Projects), err
			},
			persist: func(ctx context.Context, s store.Sink) error { return s.InsertProjects(ctx, ds.Projects) },
		},
		{
			entity: Estimates,
			generate: func() (int, error) {
				er, err := generate.Estimates(rng.New(seed, rng.Estimates), ds.Projects, ds.Estimators, params)
				ds.Estimates, res.Progressive = er.Estimates, er.Progressive
				return len(ds.Estimates), err
			},
			persist: func(ctx context.Context, s store.Sink) error { return s.InsertEstimates(ctx, ds.Estimates) },
		},
		{
			entity: Reviews,
			generate: func() (n int, err error) {
				ds.Reviews, err = generate.Reviews(rng.New(seed, rng.Reviews), ds.Projects, ds.Businesses, ds.Estimators, g.ReviewRate)
				return len(ds.Reviews), err
			},
			persist: func(ctx context.Context, s store.Sink) error { return s.InsertReviews(ctx, ds.Reviews) },
		},
	}
}

func emit(fn ProgressFunc, ev Event) {
	if fn != nil {
		fn(ev)
	}
}

// StepError wraps a failure with the entity and phase it happened in.
type StepError struct {
	Phase  Phase
	Entity Entity
	Err    error
}

func (e *StepError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Phase, e.Entity, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
