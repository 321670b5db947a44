package service

import (
	"fmt"

	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/repository"
)

// RankingService handles business logic for rankings
type RankingService struct {
	repo repository.RankingRepositoryInterface
}

// NewRankingService creates a new ranking service
func NewRankingService(repo repository.RankingRepositoryInterface) *RankingService {
	return &RankingService{repo: repo}
}

// List retrieves rankings, optionally restricted to one serie
func (s *RankingService) List(serie *int, limit int) ([]models.Ranking, error) {
	rankings, err := s.repo.List(repository.RankingFilter{Serie: serie, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to get rankings: %w", err)
	}
	if rankings == nil {
		rankings = []models.Ranking{}
	}
	return rankings, nil
}

// GetBySerie retrieves the full ranking table of a serie
func (s *RankingService) GetBySerie(serie int) ([]models.Ranking, error) {
	rankings, err := s.repo.GetBySerie(serie, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get rankings for serie %d: %w", serie, err)
	}
	if rankings == nil {
		rankings = []models.Ranking{}
	}
	return rankings, nil
}
