package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	apperrors "eurobot-backend/internal/errors"
)

var (
	rankingFilePattern = regexp.MustCompile(`(?i)^classement_serie_(\d+)\.csv$`)
	matchFilePattern   = regexp.MustCompile(`(?i)^matchs_serie_(\d+)\.csv$`)
)

// Catalog lists the per-serie source files found in a data directory
type Catalog struct {
	Series       []int
	RankingFiles map[int]string
	MatchFiles   map[int]string
}

// Discover scans dir (non-recursively) for serie CSV files
func Discover(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDataDirMissing, dir)
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	cat := &Catalog{
		RankingFiles: map[int]string{},
		MatchFiles:   map[int]string{},
	}
	seen := map[int]bool{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if n, ok := serieNumber(rankingFilePattern, name); ok {
			cat.RankingFiles[n] = filepath.Join(dir, name)
			seen[n] = true
		} else if n, ok := serieNumber(matchFilePattern, name); ok {
			cat.MatchFiles[n] = filepath.Join(dir, name)
			seen[n] = true
		}
	}

	for n := range seen {
		cat.Series = append(cat.Series, n)
	}
	sort.Ints(cat.Series)

	if len(cat.Series) == 0 {
		return cat, fmt.Errorf("%w in %s", apperrors.ErrNoSeriesFound, dir)
	}
	return cat, nil
}

func serieNumber(pattern *regexp.Regexp, name string) (int, bool) {
	m := pattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
