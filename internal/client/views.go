package client

import (
	"sort"
	"strconv"
	"strings"

	"eurobot-backend/internal/database/models"
)

// FilterTeams keeps teams whose name or stand contains search (case-insensitive)
// and whose origin equals origin. An empty origin or "all" disables the origin filter.
func FilterTeams(teams []models.Team, search, origin string) []models.Team {
	search = strings.ToLower(search)
	out := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Name), search) &&
			!strings.Contains(strings.ToLower(t.Stand), search) {
			continue
		}
		if origin != "" && origin != "all" && t.Origin != origin {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Origins returns the distinct team origins, sorted
func Origins(teams []models.Team) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range teams {
		if !seen[t.Origin] {
			seen[t.Origin] = true
			out = append(out, t.Origin)
		}
	}
	sort.Strings(out)
	return out
}

// FilterMatches keeps matches whose number, team names or stands contain search (case-insensitive)
func FilterMatches(matches []models.Match, search string) []models.Match {
	if search == "" {
		return matches
	}
	search = strings.ToLower(search)
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		fields := []string{
			strconv.Itoa(m.MatchNumber),
			m.Team1.Name, m.Team2.Name,
			m.Team1.Stand, m.Team2.Stand,
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), search) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// HighestScore finds the best single-team score and every match where it was reached
func HighestScore(matches []models.Match) (int, []models.Match) {
	if len(matches) == 0 {
		return 0, nil
	}
	best := 0
	for _, m := range matches {
		best = max(best, m.Team1.Score, m.Team2.Score)
	}
	var out []models.Match
	for _, m := range matches {
		if m.Team1.Score == best || m.Team2.Score == best {
			out = append(out, m)
		}
	}
	return best, out
}

// HighestCombinedScore returns the match with the largest sum of both scores
func HighestCombinedScore(matches []models.Match) (models.Match, bool) {
	if len(matches) == 0 {
		return models.Match{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.CombinedScore() > best.CombinedScore() {
			best = m
		}
	}
	return best, true
}

// Ranking sort keys accepted by SortRankings
const (
	SortByPosition  = "position"
	SortByPoints    = "points"
	SortByVictories = "victories"
	SortByPlayed    = "matchesPlayed"
	SortByName      = "name"
)

// SortRankings returns a sorted copy. Unknown keys sort by position.
func SortRankings(rankings []models.Ranking, key string, desc bool) []models.Ranking {
	out := append([]models.Ranking(nil), rankings...)
	less := func(a, b models.Ranking) bool {
		switch key {
		case SortByPoints:
			return a.Points < b.Points
		case SortByVictories:
			return a.Victories < b.Victories
		case SortByPlayed:
			return a.MatchesPlayed < b.MatchesPlayed
		case SortByName:
			return strings.ToLower(a.Team.Name) < strings.ToLower(b.Team.Name)
		default:
			return a.Position < b.Position
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// SeriePerformance is one team's results in one serie
type SeriePerformance struct {
	Serie    int
	Matches  int
	Points   int
	Position int // 0 when the team is not ranked in the serie
}

// Performance summarizes a team across every serie it played
type Performance struct {
	Team          string
	Wins          int
	Draws         int
	Losses        int
	TotalPoints   int
	AveragePoints float64
	BySerie       []SeriePerformance
}

// TeamPerformance computes results from the team's point of view. Points are the team's own match scores.
func TeamPerformance(teamName string, matches []models.Match, rankings []models.Ranking) Performance {
	perf := Performance{Team: teamName}
	bySerie := map[int]*SeriePerformance{}
	entry := func(serie int) *SeriePerformance {
		if p, ok := bySerie[serie]; ok {
			return p
		}
		p := &SeriePerformance{Serie: serie}
		bySerie[serie] = p
		return p
	}

	played := 0
	for _, m := range matches {
		if !m.Involves(teamName) {
			continue
		}
		own, other := m.Team1.Score, m.Team2.Score
		if m.Team1.Name != teamName {
			own, other = other, own
		}
		switch {
		case own > other:
			perf.Wins++
		case own < other:
			perf.Losses++
		default:
			perf.Draws++
		}
		played++
		perf.TotalPoints += own
		p := entry(m.Serie)
		p.Matches++
		p.Points += own
	}

	for _, r := range rankings {
		if r.Team.Name == teamName {
			entry(r.Serie).Position = r.Position
		}
	}

	if played > 0 {
		perf.AveragePoints = float64(perf.TotalPoints) / float64(played)
	}
	for _, p := range bySerie {
		perf.BySerie = append(perf.BySerie, *p)
	}
	sort.Slice(perf.BySerie, func(i, j int) bool { return perf.BySerie[i].Serie < perf.BySerie[j].Serie })
	return perf
}

// VideoURL links to the point of the serie livestream where the match starts.
// It returns "" when the serie has no livestream or the match has no timecode.
func VideoURL(serie models.Serie, match models.Match) string {
	if serie.LiveStreamURL == "" || match.Timecode == nil {
		return ""
	}
	sep := "?"
	if strings.Contains(serie.LiveStreamURL, "?") {
		sep = "&"
	}
	return serie.LiveStreamURL + sep + "start=" + strconv.Itoa(*match.Timecode)
}
