package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/logger"
	"eurobot-backend/internal/repository"
)

// Recorder observes finished ingestion runs
type Recorder interface {
	ObserveIngestion(report *Report, err error)
}

// Stores bundles the repositories an ingestion run replaces
type Stores struct {
	Teams    repository.TeamRepositoryInterface
	Matches  repository.MatchRepositoryInterface
	Rankings repository.RankingRepositoryInterface
	Series   repository.SerieRepositoryInterface
}

// Options configures an Ingester
type Options struct {
	DataDir          string
	LiveStreamConfig string
	SerieLocation    string
	Clock            func() time.Time
	Recorder         Recorder
}

// Ingester reads the CSV exports of a data directory and replaces the stored collections.
// Runs are serialized; concurrent callers wait for the current run to finish.
type Ingester struct {
	stores   Stores
	opts     Options
	mu       sync.Mutex
	clock    func() time.Time
	recorder Recorder
}

// NewIngester creates a new ingester
func NewIngester(stores Stores, opts Options) *Ingester {
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Ingester{
		stores:   stores,
		opts:     opts,
		clock:    clock,
		recorder: opts.Recorder,
	}
}

// parsed holds everything read from the files before anything is written
type parsed struct {
	inputs   []SerieInput
	matches  []models.Match
	rankings []models.Ranking
}

// Run performs one full ingestion. A returned error means nothing (or only some collections) was written;
// the report is always non-nil.
func (i *Ingester) Run(ctx context.Context) (report *Report, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	began := time.Now()
	report = newReport(i.clock())
	log := logger.WithContext(ctx).WithField("component", "ingest")

	defer func() {
		report.Duration = time.Since(began)
		if i.recorder != nil {
			i.recorder.ObserveIngestion(report, err)
		}
	}()

	catalog, err := Discover(i.opts.DataDir)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		log.WithError(err).Error("Ingestion aborted")
		return report, err
	}
	report.Series = catalog.Series

	liveStreams, lsErr := LoadLiveStreams(i.opts.LiveStreamConfig)
	if lsErr != nil {
		report.Errors = append(report.Errors, lsErr.Error())
		log.WithError(lsErr).Warn("Ignoring livestream config")
	}

	data, err := i.parseAll(ctx, catalog, report, log)
	if err != nil {
		return report, err
	}

	teams, standWarnings := MergeTeams(data.rankings)
	report.Warnings = append(report.Warnings, standWarnings...)
	report.Warnings = append(report.Warnings, positionCollisions(data.rankings)...)
	for _, w := range report.Warnings {
		log.WithFields(map[string]interface{}{
			"kind":  w.Kind,
			"serie": w.Serie,
			"team":  w.Team,
		}).Warn(w.Message)
	}

	series := SynthesizeSeries(data.inputs, i.clock(), i.opts.SerieLocation, liveStreams)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("ingestion cancelled before write: %w", err)
	}

	if err := i.write(teams, data, series); err != nil {
		report.Errors = append(report.Errors, err.Error())
		log.WithError(err).Error("Ingestion write failed")
		return report, err
	}

	report.Teams = len(teams)
	report.Matches = len(data.matches)
	report.Rankings = len(data.rankings)
	report.SeriesWritten = len(series)

	log.WithFields(map[string]interface{}{
		"series":   report.SeriesWritten,
		"teams":    report.Teams,
		"matches":  report.Matches,
		"rankings": report.Rankings,
		"skipped":  len(report.Skipped),
		"warnings": len(report.Warnings),
		"errors":   len(report.Errors),
	}).Info("Ingestion completed")

	return report, nil
}

func (i *Ingester) parseAll(ctx context.Context, catalog *Catalog, report *Report, log *logger.Logger) (*parsed, error) {
	out := &parsed{}
	for _, n := range catalog.Series {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ingestion cancelled: %w", err)
		}

		input := SerieInput{Number: n}

		if path, ok := catalog.RankingFiles[n]; ok {
			rows, err := readRows(path)
			if err != nil {
				report.Errors = append(report.Errors, err.Error())
				log.WithError(err).WithField("serie", n).Error("Failed to read rankings")
			} else {
				accepted, skipped := Partition(n, filepath.Base(path), ParseRankings(n, rows))
				input.Rankings = accepted
				report.Skipped = append(report.Skipped, skipped...)
			}
		} else {
			report.Errors = append(report.Errors, fmt.Sprintf("serie %d: rankings file missing", n))
		}

		if path, ok := catalog.MatchFiles[n]; ok {
			rows, err := readRows(path)
			if err != nil {
				report.Errors = append(report.Errors, err.Error())
				log.WithError(err).WithField("serie", n).Error("Failed to read matches")
			} else {
				accepted, skipped := Partition(n, filepath.Base(path), ParseMatches(n, rows))
				input.Matches = accepted
				report.Skipped = append(report.Skipped, skipped...)
			}
		} else {
			report.Errors = append(report.Errors, fmt.Sprintf("serie %d: matches file missing", n))
		}

		log.WithFields(map[string]interface{}{
			"serie":    n,
			"rankings": len(input.Rankings),
			"matches":  len(input.Matches),
		}).Info("Parsed serie")

		out.inputs = append(out.inputs, input)
		out.rankings = append(out.rankings, input.Rankings...)
		out.matches = append(out.matches, input.Matches...)
	}
	return out, nil
}

// write replaces each collection in turn. Earlier collections stay written if a later one fails.
func (i *Ingester) write(teams []models.Team, data *parsed, series []models.Serie) error {
	if err := i.stores.Teams.ReplaceAll(teams); err != nil {
		return fmt.Errorf("failed to write teams: %w", err)
	}
	if err := i.stores.Matches.ReplaceAll(data.matches); err != nil {
		return fmt.Errorf("failed to write matches: %w", err)
	}
	if err := i.stores.Rankings.ReplaceAll(data.rankings); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	if err := i.stores.Series.ReplaceAll(series); err != nil {
		return fmt.Errorf("failed to write series: %w", err)
	}
	return nil
}

func readRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	rows, err := DecodeRows(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}
