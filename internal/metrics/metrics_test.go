package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eurobot-backend/internal/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns the counter or gauge value of the series matching the label pairs, 0 when absent
func sample(t *testing.T, r *Recorder, name string, labelPairs ...string) float64 {
	t.Helper()
	families, err := r.Registry().Gather()
	require.NoError(t, err)

	want := map[string]string{}
	for i := 0; i+1 < len(labelPairs); i += 2 {
		want[labelPairs[i]] = labelPairs[i+1]
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			matched := 0
			for _, lp := range m.GetLabel() {
				if want[lp.GetName()] == lp.GetValue() {
					matched++
				}
			}
			if matched != len(want) {
				continue
			}
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	return 0
}

func TestObserveRequest(t *testing.T) {
	r := NewRecorder()

	r.ObserveRequest(http.MethodGet, "/api/teams/:id", http.StatusOK, 20*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "/api/teams/:id", http.StatusOK, 10*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, sample(t, r, "eurobot_http_requests_total", "method", "GET", "route", "/api/teams/:id", "status", "200"))
	assert.Equal(t, 1.0, sample(t, r, "eurobot_http_requests_total", "method", "GET", "route", "unmatched", "status", "404"))
}

func TestObserveIngestionSuccess(t *testing.T) {
	r := NewRecorder()
	report := &ingest.Report{
		Teams:         12,
		Matches:       40,
		Rankings:      24,
		SeriesWritten: 2,
		StartedAt:     time.Unix(1_700_000_000, 0),
		Duration:      2 * time.Second,
		Skipped: []ingest.SkipRecord{
			{Serie: 1, Row: 4, Reason: ingest.SkipInvalidScore},
			{Serie: 2, Row: 9, Reason: ingest.SkipInvalidScore},
		},
		Warnings: []ingest.Warning{{Kind: ingest.WarningStandMismatch, Team: "Alpha"}},
	}

	r.ObserveIngestion(report, nil)

	assert.Equal(t, 1.0, sample(t, r, "eurobot_ingest_runs_total", "result", "success"))
	assert.Equal(t, 2.0, sample(t, r, "eurobot_ingest_skipped_rows_total", "reason", string(ingest.SkipInvalidScore)))
	assert.Equal(t, 1.0, sample(t, r, "eurobot_ingest_warnings_total", "kind", string(ingest.WarningStandMismatch)))
	assert.Equal(t, 40.0, sample(t, r, "eurobot_ingest_records", "collection", "matches"))
	assert.Equal(t, 2.0, sample(t, r, "eurobot_ingest_records", "collection", "series"))
	assert.Equal(t, float64(1_700_000_002), sample(t, r, "eurobot_ingest_last_success_timestamp_seconds"))
}

func TestObserveIngestionFailureLeavesGauges(t *testing.T) {
	r := NewRecorder()

	r.ObserveIngestion(&ingest.Report{Teams: 5}, errors.New("write teams: boom"))
	r.ObserveIngestion(nil, errors.New("discover: missing"))

	assert.Equal(t, 2.0, sample(t, r, "eurobot_ingest_runs_total", "result", "failure"))
	assert.Equal(t, 0.0, sample(t, r, "eurobot_ingest_records", "collection", "teams"))
	assert.Equal(t, 0.0, sample(t, r, "eurobot_ingest_last_success_timestamp_seconds"))
}

func TestHandlerExposesRegistry(t *testing.T) {
	r := NewRecorder()
	r.ObserveRequest(http.MethodGet, "/api/stats", http.StatusOK, time.Millisecond)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eurobot_http_requests_total")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
