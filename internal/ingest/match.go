package ingest

import (
	"strconv"
	"strings"

	"eurobot-backend/internal/database/models"
)

// Match CSV columns
const (
	matchColNumber = iota
	matchColTeam1Stand
	matchColTeam1Name
	matchColTeam1Score
	matchColTeam2Score
	matchColTeam2Name
	matchColTeam2Stand
	matchColTimecode

	matchMinColumns = matchColTeam2Stand + 1
)

// ParseMatchRow converts one positional match row. Header text is never consulted.
func ParseMatchRow(serie, row int, fields []string) Outcome[models.Match] {
	if len(fields) < matchMinColumns {
		return Skipped[models.Match](row, SkipTooFewColumns)
	}

	number, err := strconv.Atoi(fields[matchColNumber])
	if err != nil || number < 1 {
		return Skipped[models.Match](row, SkipInvalidMatchNumber)
	}

	name1, name2 := fields[matchColTeam1Name], fields[matchColTeam2Name]
	if name1 == "" || name2 == "" {
		return Skipped[models.Match](row, SkipMissingTeamName)
	}

	score1, ok1 := parseScore(fields[matchColTeam1Score])
	score2, ok2 := parseScore(fields[matchColTeam2Score])
	if !ok1 || !ok2 {
		return Skipped[models.Match](row, SkipInvalidScore)
	}

	match := models.Match{
		MatchNumber: number,
		Serie:       serie,
		Team1: models.MatchTeam{
			Name:  name1,
			Stand: fields[matchColTeam1Stand],
			Score: score1,
		},
		Team2: models.MatchTeam{
			Name:  name2,
			Stand: fields[matchColTeam2Stand],
			Score: score2,
		},
		Winner: models.WinnerFromScores(score1, score2),
	}
	if tc, ok := ParseTimecode(column(fields, matchColTimecode)); ok {
		match.Timecode = &tc
	}
	return Accepted(row, match)
}

// ParseMatches parses every data row of a match file
func ParseMatches(serie int, rows [][]string) []Outcome[models.Match] {
	out := make([]Outcome[models.Match], 0, len(rows))
	for i, fields := range rows {
		out = append(out, ParseMatchRow(serie, i+1, fields))
	}
	return out
}

// ParseTimecode accepts SS, MM:SS or HH:MM:SS and returns seconds
func ParseTimecode(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}
	total := 0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		if i > 0 && n >= 60 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

func parseScore(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
