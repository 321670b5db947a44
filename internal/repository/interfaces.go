package repository

import (
	"eurobot-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	GetAll() ([]models.Team, error)
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	Count() (int64, error)
	ReplaceAll(teams []models.Team) error
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	List(filter MatchFilter) ([]models.Match, error)
	GetByID(id uuid.UUID) (*models.Match, error)
	GetByTeamName(name string) ([]models.Match, error)
	Count() (int64, error)
	CountBySerie(serie int) (int64, error)
	CountsPerSerie() ([]SerieCount, error)
	ScoreTotals(serie int) (*ScoreTotals, error)
	ReplaceAll(matches []models.Match) error
}

// RankingRepositoryInterface defines the interface for ranking repository operations
type RankingRepositoryInterface interface {
	List(filter RankingFilter) ([]models.Ranking, error)
	GetBySerie(serie int, limit int) ([]models.Ranking, error)
	Count() (int64, error)
	CountBySerie(serie int) (int64, error)
	LatestSerie() (int, bool, error)
	ReplaceAll(rankings []models.Ranking) error
}

// SerieRepositoryInterface defines the interface for serie repository operations
type SerieRepositoryInterface interface {
	Create(serie *models.Serie) error
	GetAll() ([]models.Serie, error)
	GetByID(id uuid.UUID) (*models.Serie, error)
	GetByNumber(number int) (*models.Serie, error)
	Update(serie *models.Serie) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	ReplaceAll(series []models.Serie) error
}
