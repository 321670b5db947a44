package ingest

import (
	"fmt"
	"sort"

	"eurobot-backend/internal/database/models"
)

// MergeTeams builds the name-keyed team set from rankings given in ascending serie order.
// The first stand seen wins; a known origin replaces an empty or Unknown one.
func MergeTeams(rankings []models.Ranking) ([]models.Team, []Warning) {
	byName := map[string]*models.Team{}
	var warnings []Warning

	for _, r := range rankings {
		existing, ok := byName[r.Team.Name]
		if !ok {
			byName[r.Team.Name] = &models.Team{
				Name:   r.Team.Name,
				Stand:  r.Team.Stand,
				Origin: r.Team.Origin,
			}
			continue
		}

		if existing.Stand != r.Team.Stand {
			warnings = append(warnings, Warning{
				Kind:    WarningStandMismatch,
				Serie:   r.Serie,
				Team:    r.Team.Name,
				Message: fmt.Sprintf("stand %q differs from first seen %q", r.Team.Stand, existing.Stand),
			})
		}

		if !knownOrigin(existing.Origin) && knownOrigin(r.Team.Origin) {
			existing.Origin = r.Team.Origin
		}
	}

	teams := make([]models.Team, 0, len(byName))
	for _, t := range byName {
		if t.Origin == "" {
			t.Origin = models.UnknownOrigin
		}
		teams = append(teams, *t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, warnings
}

func knownOrigin(origin string) bool {
	return origin != "" && origin != models.UnknownOrigin
}
