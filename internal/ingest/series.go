package ingest

import (
	"fmt"
	"time"

	"eurobot-backend/internal/database/models"
)

const serieSpacing = 10 * 24 * time.Hour

// SerieInput carries what synthesis needs to know about one discovered serie
type SerieInput struct {
	Number   int
	Matches  []models.Match
	Rankings []models.Ranking
}

// SynthesizeSeries derives serie metadata. The last serie starts ten days before today,
// each earlier one ten days before the next.
func SynthesizeSeries(inputs []SerieInput, today time.Time, location string, liveStreams map[int]string) []models.Serie {
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	k := len(inputs)
	series := make([]models.Serie, 0, k)

	for i, in := range inputs {
		start := midnight.Add(-time.Duration(k-i) * serieSpacing)
		series = append(series, models.Serie{
			SerieNumber:   in.Number,
			Name:          fmt.Sprintf("Série %d", in.Number),
			Description:   fmt.Sprintf("Eurobot serie %d", in.Number),
			StartDate:     start,
			EndDate:       start.Add(24 * time.Hour),
			Status:        models.SerieStatusCompleted,
			TotalTeams:    distinctTeams(in),
			TotalMatches:  len(in.Matches),
			Location:      location,
			LiveStreamURL: liveStreams[in.Number],
		})
	}
	return series
}

func distinctTeams(in SerieInput) int {
	names := map[string]struct{}{}
	for _, r := range in.Rankings {
		names[r.Team.Name] = struct{}{}
	}
	for _, m := range in.Matches {
		names[m.Team1.Name] = struct{}{}
		names[m.Team2.Name] = struct{}{}
	}
	return len(names)
}
