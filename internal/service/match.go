package service

import (
	"errors"
	"fmt"

	"eurobot-backend/internal/database/models"
	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchService handles business logic for matches
type MatchService struct {
	repo repository.MatchRepositoryInterface
}

// NewMatchService creates a new match service
func NewMatchService(repo repository.MatchRepositoryInterface) *MatchService {
	return &MatchService{repo: repo}
}

// List retrieves matches, optionally restricted to one serie
func (s *MatchService) List(serie *int, limit int) ([]models.Match, error) {
	matches, err := s.repo.List(repository.MatchFilter{Serie: serie, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}

// GetByID retrieves a match by ID
func (s *MatchService) GetByID(id uuid.UUID) (*models.Match, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}
