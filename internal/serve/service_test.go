package serve

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/store"
	mock_store "github.com/constructioncheck/ccgen/internal/store/mocks"
)

func newTestService(t *testing.T) (*Service, *mock_store.MockReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	r := mock_store.NewMockReader(ctrl)
	return New(Config{}, r, slog.New(slog.DiscardHandler)), r
}

func get(t *testing.T, s *Service, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{PollInterval: time.Second}, nil, nil)
	if s.cfg.PollInterval != 10*time.Second {
		t.Fatalf("PollInterval = %s, want 10s", s.cfg.PollInterval)
	}
	if s.cfg.Addr != "127.0.0.1:8787" || s.cfg.EventsBuffer != 200 {
		t.Fatalf("cfg = %+v", s.cfg)
	}
}

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{Projects: 800, Estimates: 1900, Reviews: 210}
	curr := Snapshot{Projects: 40, Estimates: 95, Reviews: 11}

	delta := diffSnapshots(prev, curr)
	if delta.Projects != -760 || delta.Estimates != -1805 || delta.Reviews != -199 {
		t.Fatalf("delta = %+v", delta)
	}
	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots should produce a zero delta")
	}
}

func TestPollOncePublishesChanges(t *testing.T) {
	s, r := newTestService(t)
	ctx := context.Background()
	gomock.InOrder(
		r.EXPECT().Counts(gomock.Any()).Return(store.Counts{Projects: 40, Estimates: 90}, nil),
		r.EXPECT().Counts(gomock.Any()).Return(store.Counts{Projects: 40, Estimates: 90}, nil),
		r.EXPECT().Counts(gomock.Any()).Return(store.Counts{Projects: 60, Estimates: 150}, nil),
		r.EXPECT().Counts(gomock.Any()).Return(store.Counts{}, errors.New("database is locked")),
	)

	for range 4 {
		s.pollOnce(ctx)
	}

	if len(s.events) != 2 {
		t.Fatalf("events = %d, want snapshot + one change", len(s.events))
	}
	if s.events[0].Type != "snapshot" || s.events[1].Type != "dataset_changed" {
		t.Fatalf("event types = %q, %q", s.events[0].Type, s.events[1].Type)
	}
	if s.events[1].Delta.Estimates != 60 {
		t.Fatalf("delta = %+v", s.events[1].Delta)
	}

	st := s.snapshotStatus()
	if st.PollCount != 4 || st.LastError != "database is locked" || st.Summary.Projects != 60 {
		t.Fatalf("status = %+v", st)
	}
}

func TestPublishEventTrimsBuffer(t *testing.T) {
	s := New(Config{EventsBuffer: 3}, nil, slog.New(slog.DiscardHandler))
	for i := range 5 {
		s.publishEvent(Event{ID: int64(i + 1)})
	}
	if len(s.events) != 3 || s.events[0].ID != 3 {
		t.Fatalf("events = %+v", s.events)
	}
}

func TestHealthz(t *testing.T) {
	s, _ := newTestService(t)
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok\n" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestSummary(t *testing.T) {
	s, r := newTestService(t)
	r.EXPECT().Counts(gomock.Any()).Return(store.Counts{Businesses: 150, Projects: 800, ProgressiveProjects: 320}, nil)

	rec := get(t, s, "/v1/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decode[Snapshot](t, rec)
	if got.Businesses != 150 || got.Projects != 800 || got.ProgressiveProjects != 320 {
		t.Fatalf("summary = %+v", got)
	}
}

func TestProjectEstimates(t *testing.T) {
	s, r := newTestService(t)
	submitted := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	r.EXPECT().ProjectEstimates(gomock.Any(), "p-1").Return([]model.Estimate{
		{ID: "e1", ProjectID: "p-1", Sequence: 1, Class: aace.Class5, Status: model.EstimateSuperseded, SubmittedDate: submitted,
			Breakdown: model.Breakdown{Labor: 100, Materials: 50.25}},
		{ID: "e2", ProjectID: "p-1", Sequence: 2, Class: aace.Class4, Status: model.EstimateAccepted, SubmittedDate: submitted.AddDate(0, 0, 12)},
	}, nil)

	rec := get(t, s, "/v1/projects/p-1/estimates")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{`"aace_class":"class_5"`, `"estimate_sequence":2`, `"labor":100`, `"breakdown_total":150.25`, `"status":"accepted"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s", want)
		}
	}
	if strings.Contains(body, "actual_cost") {
		t.Error("nil actual cost should be omitted")
	}
}

func TestProjectEstimatesNotFound(t *testing.T) {
	s, r := newTestService(t)
	r.EXPECT().ProjectEstimates(gomock.Any(), "missing").Return(nil, nil)

	if rec := get(t, s, "/v1/projects/missing/estimates"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestEstimatesByClass(t *testing.T) {
	s, r := newTestService(t)
	r.EXPECT().EstimatesByClass(gomock.Any(), aace.Class3).Return([]model.Estimate{{ID: "e9", Class: aace.Class3}}, nil)

	rec := get(t, s, "/v1/estimates?class=class_3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decode[[]EstimateJSON](t, rec)
	if len(got) != 1 || got[0].Class != "class_3" {
		t.Fatalf("estimates = %+v", got)
	}
}

func TestEstimatesBadRequests(t *testing.T) {
	s, _ := newTestService(t)
	for _, path := range []string{"/v1/estimates", "/v1/estimates?class=class_9", "/v1/regions?limit=-2"} {
		if rec := get(t, s, path); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
	}
}

func TestClasses(t *testing.T) {
	s, r := newTestService(t)
	r.EXPECT().ClassDistribution(gomock.Any()).Return([]store.ClassStat{
		{Class: aace.Class5, Estimates: 320, AvgWidthPct: 150},
		{Class: aace.Class1, Estimates: 90, AvgWidthPct: 25},
	}, nil)

	got := decode[[]classJSON](t, get(t, s, "/v1/classes"))
	if len(got) != 2 {
		t.Fatalf("classes = %+v", got)
	}
	if got[0].ExpectedWidthPct != 150 || got[1].ExpectedWidthPct != 25 || got[1].Label != "Class 1" {
		t.Fatalf("classes = %+v", got)
	}
}

func TestRegionsPassesLimit(t *testing.T) {
	s, r := newTestService(t)
	r.EXPECT().RegionalComparison(gomock.Any(), 5).Return([]store.RegionStat{{State: "CA", Multiplier: 1.35, Projects: 12}}, nil)

	got := decode[[]regionJSON](t, get(t, s, "/v1/regions?limit=5"))
	if len(got) != 1 || got[0].State != "CA" {
		t.Fatalf("regions = %+v", got)
	}
	if d := got[0].PremiumPct - 35; d > 1e-9 || d < -1e-9 {
		t.Fatalf("premium = %v, want 35", got[0].PremiumPct)
	}
}

func TestReadUnsupportedMapsTo501(t *testing.T) {
	s, r := newTestService(t)
	r.EXPECT().AccuracyRows(gomock.Any()).Return(nil, store.ErrReadUnsupported)

	if rec := get(t, s, "/v1/accuracy"); rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", rec.Code)
	}
}

func TestProgressiveDefaultLimit(t *testing.T) {
	s, r := newTestService(t)
	r.EXPECT().ProgressiveProjects(gomock.Any(), 20).Return([]store.ProjectSummary{{ID: "p-7", Steps: 5, Status: model.StatusCompleted}}, nil)

	got := decode[[]projectSummaryJSON](t, get(t, s, "/v1/projects/progressive"))
	if len(got) != 1 || got[0].Steps != 5 || got[0].Status != string(model.StatusCompleted) {
		t.Fatalf("progressive = %+v", got)
	}
}
