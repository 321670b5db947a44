package testutils

import (
	"fmt"
	"time"

	"eurobot-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: newBase(),
		Name:      "Test Team",
		Stand:     "A1",
		Origin:    "France",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match won by team1
func (f *MatchFactory) Create() *models.Match {
	return f.Between(1, 1, "Alpha", 10, "Beta", 7)
}

// Between builds a match with the winner derived from the scores
func (f *MatchFactory) Between(serie, number int, team1 string, score1 int, team2 string, score2 int) *models.Match {
	return &models.Match{
		BaseModel:   newBase(),
		MatchNumber: number,
		Serie:       serie,
		Team1:       models.MatchTeam{Name: team1, Stand: "A1", Score: score1},
		Team2:       models.MatchTeam{Name: team2, Stand: "B2", Score: score2},
		Winner:      models.WinnerFromScores(score1, score2),
	}
}

// RankingFactory provides methods to create test Ranking data
type RankingFactory struct{}

// NewRankingFactory creates a new RankingFactory
func NewRankingFactory() *RankingFactory {
	return &RankingFactory{}
}

// Create creates a test Ranking at position 1 of serie 1
func (f *RankingFactory) Create() *models.Ranking {
	return f.At(1, 1, "Alpha", 10)
}

// At ranks the named team in a serie
func (f *RankingFactory) At(serie, position int, team string, points int) *models.Ranking {
	return &models.Ranking{
		BaseModel:     newBase(),
		Serie:         serie,
		Position:      position,
		Team:          models.RankingTeam{Name: team, Stand: fmt.Sprintf("S%d", position), Origin: "France"},
		Points:        points,
		MatchesPlayed: 5,
		Victories:     3,
		Draws:         1,
		Defeats:       1,
	}
}

// SerieFactory provides methods to create test Serie data
type SerieFactory struct{}

// NewSerieFactory creates a new SerieFactory
func NewSerieFactory() *SerieFactory {
	return &SerieFactory{}
}

// Create creates a test Serie with number 1
func (f *SerieFactory) Create() *models.Serie {
	return f.WithNumber(1)
}

// WithNumber creates a completed one-day serie with the given number
func (f *SerieFactory) WithNumber(n int) *models.Serie {
	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 10*(n-1))
	return &models.Serie{
		BaseModel:   newBase(),
		SerieNumber: n,
		Name:        fmt.Sprintf("Série %d", n),
		Description: fmt.Sprintf("Eurobot serie %d", n),
		StartDate:   start,
		EndDate:     start.Add(24 * time.Hour),
		Status:      models.SerieStatusCompleted,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team    *TeamFactory
	Match   *MatchFactory
	Ranking *RankingFactory
	Serie   *SerieFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:    NewTeamFactory(),
		Match:   NewMatchFactory(),
		Ranking: NewRankingFactory(),
		Serie:   NewSerieFactory(),
	}
}
