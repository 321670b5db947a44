package ingest

import (
	"regexp"
	"strconv"

	"eurobot-backend/internal/database/models"
)

// Ranking CSV columns
const (
	rankColPosition = iota
	rankColName
	rankColStand
	rankColOrigin
	rankColPoints
	rankColPlayed
	rankColVictories
	rankColDraws
	rankColDefeats

	rankMinColumns = rankColStand + 1
)

var (
	// matched against the accent-folded token, so "ème" arrives as "eme"
	ordinalPattern       = regexp.MustCompile(`^(\d+)\s*(?:er|re|ere|nd|nde|e|eme)s?\.?$`)
	leadingNumberPattern = regexp.MustCompile(`^(\d+)`)
)

// ParsePosition reads a French ordinal ("1er", "2ème") or a bare leading number.
// It falls back to rowIndex when neither yields a positive number.
func ParsePosition(token string, rowIndex int) int {
	folded := Fold(token)
	if m := ordinalPattern.FindStringSubmatch(folded); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if m := leadingNumberPattern.FindStringSubmatch(folded); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return rowIndex
}

// ParseRankingRow converts one positional ranking row
func ParseRankingRow(serie, row int, fields []string) Outcome[models.Ranking] {
	if len(fields) < rankMinColumns {
		return Skipped[models.Ranking](row, SkipTooFewColumns)
	}

	name := fields[rankColName]
	if name == "" {
		return Skipped[models.Ranking](row, SkipMissingTeamName)
	}
	stand := fields[rankColStand]
	if stand == "" {
		return Skipped[models.Ranking](row, SkipMissingStand)
	}

	origin := column(fields, rankColOrigin)
	if origin == "" {
		origin = models.UnknownOrigin
	}

	return Accepted(row, models.Ranking{
		Serie:    serie,
		Position: ParsePosition(fields[rankColPosition], row),
		Team: models.RankingTeam{
			Name:   name,
			Stand:  stand,
			Origin: origin,
		},
		Points:        intOrZero(column(fields, rankColPoints)),
		MatchesPlayed: intOrZero(column(fields, rankColPlayed)),
		Victories:     intOrZero(column(fields, rankColVictories)),
		Draws:         intOrZero(column(fields, rankColDraws)),
		Defeats:       intOrZero(column(fields, rankColDefeats)),
	})
}

// ParseRankings parses every data row of a ranking file
func ParseRankings(serie int, rows [][]string) []Outcome[models.Ranking] {
	out := make([]Outcome[models.Ranking], 0, len(rows))
	for i, fields := range rows {
		out = append(out, ParseRankingRow(serie, i+1, fields))
	}
	return out
}

// positionCollisions reports every ranking that reuses a position already taken in its serie
func positionCollisions(rankings []models.Ranking) []Warning {
	type key struct{ serie, position int }
	taken := map[key]string{}
	var warnings []Warning
	for _, r := range rankings {
		k := key{r.Serie, r.Position}
		if first, ok := taken[k]; ok {
			warnings = append(warnings, Warning{
				Kind:    WarningPositionCollision,
				Serie:   r.Serie,
				Team:    r.Team.Name,
				Message: "position " + strconv.Itoa(r.Position) + " already held by " + first,
			})
			continue
		}
		taken[k] = r.Team.Name
	}
	return warnings
}

func column(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func intOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
