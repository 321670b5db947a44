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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	matchRepo repository.MatchRepositoryInterface
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, matchRepo repository.MatchRepositoryInterface) *TeamService {
	return &TeamService{
		repo:      repo,
		matchRepo: matchRepo,
	}
}

// GetAll retrieves all teams ordered by name
func (s *TeamService) GetAll() ([]models.Team, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetMatches retrieves the matches a team name appears in. Unknown names yield an empty list.
func (s *TeamService) GetMatches(teamName string) ([]models.Match, error) {
	matches, err := s.matchRepo.GetByTeamName(teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches for team %s: %w", teamName, err)
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}
