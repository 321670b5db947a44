package ingest

// SkipReason is the closed set of reasons a data row is rejected
type SkipReason string

const (
	SkipTooFewColumns      SkipReason = "too_few_columns"
	SkipMissingTeamName    SkipReason = "missing_team_name"
	SkipMissingStand       SkipReason = "missing_stand"
	SkipInvalidMatchNumber SkipReason = "invalid_match_number"
	SkipInvalidScore       SkipReason = "invalid_score"
)

// Outcome is the result of parsing one data row: either an accepted record or a skip reason.
// Row is the 1-based data row number, header excluded.
type Outcome[T any] struct {
	Row    int
	Record T
	Reason SkipReason
	ok     bool
}

// Accepted wraps a successfully parsed record
func Accepted[T any](row int, record T) Outcome[T] {
	return Outcome[T]{Row: row, Record: record, ok: true}
}

// Skipped records a rejected row
func Skipped[T any](row int, reason SkipReason) Outcome[T] {
	return Outcome[T]{Row: row, Reason: reason}
}

// OK reports whether the row was accepted
func (o Outcome[T]) OK() bool {
	return o.ok
}

// Partition splits outcomes into accepted records and skip records for the given source file
func Partition[T any](serie int, file string, outcomes []Outcome[T]) ([]T, []SkipRecord) {
	accepted := make([]T, 0, len(outcomes))
	var skipped []SkipRecord
	for _, o := range outcomes {
		if o.ok {
			accepted = append(accepted, o.Record)
			continue
		}
		skipped = append(skipped, SkipRecord{Serie: serie, File: file, Row: o.Row, Reason: o.Reason})
	}
	return accepted, skipped
}
