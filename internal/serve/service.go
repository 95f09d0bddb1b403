// Package serve exposes a stored dataset over a read-only JSON API.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/constructioncheck/ccgen/internal/store"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr         string
	PollInterval time.Duration
	EventsBuffer int
}

// Snapshot is the table cardinality state at one poll.
type Snapshot struct {
	At                  time.Time `json:"at"`
	Businesses          int       `json:"businesses"`
	Estimators          int       `json:"estimators"`
	Expertise           int       `json:"expertise"`
	Projects            int       `json:"projects"`
	Estimates           int       `json:"estimates"`
	Reviews             int       `json:"reviews"`
	ProgressiveProjects int       `json:"progressive_projects"`
}

// Delta captures row count changes between polls, e.g. after a new
// generate run against the same store.
type Delta struct {
	Projects  int `json:"projects"`
	Estimates int `json:"estimates"`
	Reviews   int `json:"reviews"`
}

func (d Delta) isZero() bool {
	return d.Projects == 0 && d.Estimates == 0 && d.Reviews == 0
}

// Event is emitted whenever the store contents change.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service serves the HTTP API and polls the store for changes.
type Service struct {
	cfg    Config
	reader store.Reader
	log    *slog.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a service reading from r.
func New(cfg Config, r store.Reader, log *slog.Logger) *Service {
	if cfg.PollInterval < 2*time.Second {
		cfg.PollInterval = 10 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		cfg:       cfg,
		reader:    r,
		log:       log,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run serves HTTP and polls until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("serving", "addr", s.cfg.Addr)

	// Seed the first snapshot so /v1/status is useful immediately.
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(ctx)
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		}
	}
}

func (s *Service) pollOnce(ctx context.Context) {
	c, err := s.reader.Counts(ctx)
	now := time.Now()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		s.log.Warn("poll failed", "err", err)
		return
	}

	snap := snapshotFromCounts(c, now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{ID: s.nextEventID, Type: "snapshot", Timestamp: now, Snapshot: snap}
		publish = true
	} else if delta := diffSnapshots(prev, snap); !delta.isZero() {
		s.nextEventID++
		ev = Event{ID: s.nextEventID, Type: "dataset_changed", Timestamp: now, Snapshot: snap, Delta: delta}
		publish = true
	}
	s.mu.Unlock()

	if publish {
		s.log.Debug("store changed", "projects", snap.Projects, "estimates", snap.Estimates)
		s.publishEvent(ev)
	}
}

func snapshotFromCounts(c store.Counts, at time.Time) Snapshot {
	return Snapshot{
		At:                  at,
		Businesses:          c.Businesses,
		Estimators:          c.Estimators,
		Expertise:           c.Expertise,
		Projects:            c.Projects,
		Estimates:           c.Estimates,
		Reviews:             c.Reviews,
		ProgressiveProjects: c.ProgressiveProjects,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Projects:  curr.Projects - prev.Projects,
		Estimates: curr.Estimates - prev.Estimates,
		Reviews:   curr.Reviews - prev.Reviews,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.PollInterval.Seconds()),
		PollCount:       s.pollCount,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
