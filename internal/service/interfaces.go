package service

import (
	"eurobot-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetAll() ([]models.Team, error)
	GetByID(id uuid.UUID) (*models.Team, error)
	GetMatches(teamName string) ([]models.Match, error)
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	List(serie *int, limit int) ([]models.Match, error)
	GetByID(id uuid.UUID) (*models.Match, error)
}

// RankingServiceInterface defines the interface for ranking service
type RankingServiceInterface interface {
	List(serie *int, limit int) ([]models.Ranking, error)
	GetBySerie(serie int) ([]models.Ranking, error)
}

// SerieServiceInterface defines the interface for serie service
type SerieServiceInterface interface {
	GetAll() ([]models.Serie, error)
	GetByID(id uuid.UUID) (*models.Serie, error)
	GetByNumber(number int) (*models.Serie, error)
	Create(req *CreateSerieRequest) (*models.Serie, error)
	Update(id uuid.UUID, req *UpdateSerieRequest) (*models.Serie, error)
	Delete(id uuid.UUID) error
	GetStats(id uuid.UUID) (*SerieStatsResponse, error)
}

// StatsServiceInterface defines the interface for the dashboard statistics service
type StatsServiceInterface interface {
	GetStats() (*StatsResponse, error)
}
