package serve

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/constructioncheck/ccgen/internal/aace"
	"github.com/constructioncheck/ccgen/internal/model"
	"github.com/constructioncheck/ccgen/internal/store"
)

// Handler returns the HTTP routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/events", s.handleEvents)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	mux.HandleFunc("GET /v1/summary", s.handleSummary)
	mux.HandleFunc("GET /v1/classes", s.handleClasses)
	mux.HandleFunc("GET /v1/regions", s.handleRegions)
	mux.HandleFunc("GET /v1/accuracy", s.handleAccuracy)
	mux.HandleFunc("GET /v1/projects/progressive", s.handleProgressive)
	mux.HandleFunc("GET /v1/projects/{id}/estimates", s.handleProjectEstimates)
	mux.HandleFunc("GET /v1/estimates", s.handleEstimates)
	return mux
}

// EstimateJSON is the wire form of one estimate.
type EstimateJSON struct {
	ID                    string        `json:"id"`
	ProjectID             string        `json:"project_id"`
	EstimatorID           string        `json:"estimator_id"`
	Sequence              int           `json:"estimate_sequence"`
	Class                 string        `json:"aace_class"`
	EngineeringCompletion float64       `json:"engineering_completion_percent"`
	EstimatedTotalCost    float64       `json:"estimated_total_cost"`
	ConfidenceLow         float64       `json:"confidence_interval_low"`
	ConfidenceHigh        float64       `json:"confidence_interval_high"`
	Breakdown             breakdownJSON `json:"breakdown"`
	BreakdownTotal        float64       `json:"breakdown_total"`
	ContingencyPercent    float64       `json:"contingency_percent"`
	ContingencyAmount     float64       `json:"contingency_amount"`
	EstimatedDurationDays int           `json:"estimated_duration_days"`
	EstimationMethod      string        `json:"estimation_method"`
	Status                string        `json:"status"`
	SubmittedDate         time.Time     `json:"submitted_date"`
	ActualCost            *float64      `json:"actual_cost,omitempty"`
	VariancePercent       *float64      `json:"variance_percent,omitempty"`
}

type breakdownJSON struct {
	Labor         float64 `json:"labor"`
	Materials     float64 `json:"materials"`
	Equipment     float64 `json:"equipment"`
	Subcontractor float64 `json:"subcontractor"`
	Overhead      float64 `json:"overhead"`
	Profit        float64 `json:"profit"`
}

func estimateJSON(e model.Estimate) EstimateJSON {
	return EstimateJSON{
		ID:                    e.ID,
		ProjectID:             e.ProjectID,
		EstimatorID:           e.EstimatorID,
		Sequence:              e.Sequence,
		Class:                 e.Class.String(),
		EngineeringCompletion: e.EngineeringCompletion,
		EstimatedTotalCost:    e.EstimatedTotalCost,
		ConfidenceLow:         e.ConfidenceLow,
		ConfidenceHigh:        e.ConfidenceHigh,
		Breakdown:             breakdownJSON(e.Breakdown),
		BreakdownTotal:        model.RoundCents(e.Breakdown.Sum()),
		ContingencyPercent:    e.ContingencyPercent,
		ContingencyAmount:     e.ContingencyAmount,
		EstimatedDurationDays: e.EstimatedDurationDays,
		EstimationMethod:      e.EstimationMethod,
		Status:                string(e.Status),
		SubmittedDate:         e.SubmittedDate,
		ActualCost:            e.ActualCost,
		VariancePercent:       e.VariancePercent,
	}
}

func estimatesJSON(es []model.Estimate) []EstimateJSON {
	out := make([]EstimateJSON, len(es))
	for i, e := range es {
		out[i] = estimateJSON(e)
	}
	return out
}

type classJSON struct {
	Class            string  `json:"aace_class"`
	Label            string  `json:"label"`
	Estimates        int     `json:"estimates"`
	Accepted         int     `json:"accepted"`
	AvgCost          float64 `json:"avg_cost"`
	AvgWidthPct      float64 `json:"avg_width_percent"`
	ExpectedWidthPct float64 `json:"expected_width_percent"`
	AvgEngineering   float64 `json:"avg_engineering_completion"`
	AvgContingency   float64 `json:"avg_contingency_percent"`
}

type regionJSON struct {
	State           string  `json:"state"`
	Multiplier      float64 `json:"multiplier"`
	PremiumPct      float64 `json:"premium_percent"`
	Projects        int     `json:"projects"`
	AvgAdjustedCost float64 `json:"avg_adjusted_cost"`
	AvgNationalCost float64 `json:"avg_national_cost"`
}

type accuracyJSON struct {
	EstimateID      string  `json:"estimate_id"`
	ProjectID       string  `json:"project_id"`
	Estimator       string  `json:"estimator"`
	Class           string  `json:"aace_class"`
	Estimated       float64 `json:"estimated"`
	Actual          float64 `json:"actual"`
	VarianceAmount  float64 `json:"variance_amount"`
	VariancePercent float64 `json:"variance_percent"`
}

type projectSummaryJSON struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	State    string  `json:"state"`
	BaseCost float64 `json:"base_cost"`
	Status   string  `json:"status"`
	Steps    int     `json:"steps"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleSummary(w http.ResponseWriter, r *http.Request) {
	c, err := s.reader.Counts(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotFromCounts(c, time.Now().UTC()))
}

func (s *Service) handleClasses(w http.ResponseWriter, r *http.Request) {
	stats, err := s.reader.ClassDistribution(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]classJSON, len(stats))
	for i, cs := range stats {
		info := aace.MustInfo(cs.Class)
		out[i] = classJSON{
			Class:            cs.Class.String(),
			Label:            cs.Class.Label(),
			Estimates:        cs.Estimates,
			Accepted:         cs.Accepted,
			AvgCost:          cs.AvgCost,
			AvgWidthPct:      cs.AvgWidthPct,
			ExpectedWidthPct: info.ConfidenceHighPct - info.ConfidenceLowPct,
			AvgEngineering:   cs.AvgEngineering,
			AvgContingency:   cs.AvgContingency,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleRegions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}
	stats, err := s.reader.RegionalComparison(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]regionJSON, len(stats))
	for i, rs := range stats {
		out[i] = regionJSON{
			State:           rs.State,
			Multiplier:      rs.Multiplier,
			PremiumPct:      rs.PremiumPct(),
			Projects:        rs.Projects,
			AvgAdjustedCost: rs.AvgAdjustedCost,
			AvgNationalCost: rs.AvgNationalCost,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleAccuracy(w http.ResponseWriter, r *http.Request) {
	rows, err := s.reader.AccuracyRows(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]accuracyJSON, len(rows))
	for i, a := range rows {
		out[i] = accuracyJSON{
			EstimateID:      a.EstimateID,
			ProjectID:       a.ProjectID,
			Estimator:       a.EstimatorName,
			Class:           a.Class.String(),
			Estimated:       a.Estimated,
			Actual:          a.Actual,
			VarianceAmount:  a.VarianceAmount,
			VariancePercent: a.VariancePercent,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleProgressive(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, 20)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}
	ps, err := s.reader.ProgressiveProjects(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]projectSummaryJSON, len(ps))
	for i, p := range ps {
		out[i] = projectSummaryJSON{
			ID:       p.ID,
			Title:    p.Title,
			State:    p.State,
			BaseCost: p.BaseCost,
			Status:   string(p.Status),
			Steps:    p.Steps,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleProjectEstimates(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	es, err := s.reader.ProjectEstimates(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if len(es) == 0 {
		writeJSON(w, http.StatusNotFound, errorJSON{Error: fmt.Sprintf("no estimates for project %q", id)})
		return
	}
	writeJSON(w, http.StatusOK, estimatesJSON(es))
}

func (s *Service) handleEstimates(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("class")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "class query parameter is required"})
		return
	}
	class, err := aace.Parse(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}
	es, err := s.reader.EstimatesByClass(r.Context(), class)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, estimatesJSON(es))
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	writeSSE(w, Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrReadUnsupported) {
		status = http.StatusNotImplemented
	}
	s.log.Error("request failed", "path", r.URL.Path, "err", err)
	writeJSON(w, status, errorJSON{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func queryLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("limit must be a non-negative integer, got %q", raw)
	}
	return n, nil
}
