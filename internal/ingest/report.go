package ingest

import "time"

// WarningKind classifies non-fatal data anomalies
type WarningKind string

const (
	WarningStandMismatch     WarningKind = "stand_mismatch"
	WarningPositionCollision WarningKind = "position_collision"
)

// SkipRecord identifies one rejected CSV row
type SkipRecord struct {
	Serie  int        `json:"serie"`
	File   string     `json:"file"`
	Row    int        `json:"row"`
	Reason SkipReason `json:"reason"`
}

// Warning is a data anomaly that did not prevent the row from being kept
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Serie   int         `json:"serie,omitempty"`
	Team    string      `json:"team"`
	Message string      `json:"message"`
}

// Report summarizes one ingestion run
type Report struct {
	Series        []int         `json:"series"`
	Teams         int           `json:"teams"`
	Matches       int           `json:"matches"`
	Rankings      int           `json:"rankings"`
	SeriesWritten int           `json:"seriesWritten"`
	Skipped       []SkipRecord  `json:"skipped"`
	Warnings      []Warning     `json:"warnings"`
	Errors        []string      `json:"errors"`
	StartedAt     time.Time     `json:"startedAt"`
	Duration      time.Duration `json:"duration"`
}

func newReport(startedAt time.Time) *Report {
	return &Report{
		Series:    []int{},
		Skipped:   []SkipRecord{},
		Warnings:  []Warning{},
		Errors:    []string{},
		StartedAt: startedAt,
	}
}

// WarningsOf returns the warnings of the given kind
func (r *Report) WarningsOf(kind WarningKind) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}
