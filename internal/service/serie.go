package service

import (
	"errors"
	"fmt"
	"time"

	"eurobot-backend/internal/database/models"
	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SerieService handles business logic for series
type SerieService struct {
	repo        repository.SerieRepositoryInterface
	matchRepo   repository.MatchRepositoryInterface
	rankingRepo repository.RankingRepositoryInterface
	validator   *validator.Validate
}

// NewSerieService creates a new serie service
func NewSerieService(
	repo repository.SerieRepositoryInterface,
	matchRepo repository.MatchRepositoryInterface,
	rankingRepo repository.RankingRepositoryInterface,
	validator *validator.Validate,
) *SerieService {
	return &SerieService{
		repo:        repo,
		matchRepo:   matchRepo,
		rankingRepo: rankingRepo,
		validator:   validator,
	}
}

// CreateSerieRequest represents the request to create a serie
type CreateSerieRequest struct {
	SerieNumber   int                `json:"serieNumber" example:"1"`
	Name          string             `json:"name" example:"Série 1"`
	Description   string             `json:"description,omitempty"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	Status        models.SerieStatus `json:"status,omitempty" example:"upcoming"`
	TotalTeams    int                `json:"totalTeams,omitempty"`
	TotalMatches  int                `json:"totalMatches,omitempty"`
	Location      string             `json:"location,omitempty"`
	Rules         string             `json:"rules,omitempty"`
	LiveStreamURL string             `json:"liveStreamUrl,omitempty"`
}

// UpdateSerieRequest represents a partial update. Nil fields are left untouched.
type UpdateSerieRequest struct {
	SerieNumber   *int                `json:"serieNumber,omitempty"`
	Name          *string             `json:"name,omitempty"`
	Description   *string             `json:"description,omitempty"`
	StartDate     *time.Time          `json:"startDate,omitempty"`
	EndDate       *time.Time          `json:"endDate,omitempty"`
	Status        *models.SerieStatus `json:"status,omitempty"`
	TotalTeams    *int                `json:"totalTeams,omitempty"`
	TotalMatches  *int                `json:"totalMatches,omitempty"`
	Location      *string             `json:"location,omitempty"`
	Rules         *string             `json:"rules,omitempty"`
	LiveStreamURL *string             `json:"liveStreamUrl,omitempty"`
}

// SerieStatsResponse aggregates the matches and rankings of one serie
type SerieStatsResponse struct {
	Serie        *models.Serie `json:"serie"`
	TotalMatches int64         `json:"totalMatches"`
	TotalTeams   int64         `json:"totalTeams"`
	TotalScore   int64         `json:"totalScore"`
	AverageScore float64       `json:"averageScore"`
}

// GetAll retrieves all series ordered by serie number
func (s *SerieService) GetAll() ([]models.Serie, error) {
	series, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}
	if series == nil {
		series = []models.Serie{}
	}
	return series, nil
}

// GetByID retrieves a serie by ID
func (s *SerieService) GetByID(id uuid.UUID) (*models.Serie, error) {
	serie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSerieNotFound
		}
		return nil, fmt.Errorf("failed to get serie: %w", err)
	}
	return serie, nil
}

// GetByNumber retrieves a serie by its serie number
func (s *SerieService) GetByNumber(number int) (*models.Serie, error) {
	serie, err := s.repo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSerieNotFound
		}
		return nil, fmt.Errorf("failed to get serie: %w", err)
	}
	return serie, nil
}

// Create creates a new serie
func (s *SerieService) Create(req *CreateSerieRequest) (*models.Serie, error) {
	serie := &models.Serie{
		SerieNumber:   req.SerieNumber,
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
		TotalTeams:    req.TotalTeams,
		TotalMatches:  req.TotalMatches,
		Location:      req.Location,
		Rules:         req.Rules,
		LiveStreamURL: req.LiveStreamURL,
	}
	if serie.Status == "" {
		serie.Status = models.SerieStatusUpcoming
	}

	if err := s.validator.Struct(serie); err != nil {
		return nil, validationFailed(err)
	}

	if err := s.ensureNumberFree(serie.SerieNumber); err != nil {
		return nil, err
	}

	if err := s.repo.Create(serie); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSerieExists
		}
		return nil, fmt.Errorf("failed to create serie: %w", err)
	}

	return serie, nil
}

// Update applies the non-nil fields of req and validates the merged record
func (s *SerieService) Update(id uuid.UUID, req *UpdateSerieRequest) (*models.Serie, error) {
	serie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSerieNotFound
		}
		return nil, fmt.Errorf("failed to get serie: %w", err)
	}

	numberChanged := req.SerieNumber != nil && *req.SerieNumber != serie.SerieNumber
	applySerieUpdate(serie, req)

	if err := s.validator.Struct(serie); err != nil {
		return nil, validationFailed(err)
	}

	if numberChanged {
		if err := s.ensureNumberFree(serie.SerieNumber); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(serie); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSerieExists
		}
		return nil, fmt.Errorf("failed to update serie: %w", err)
	}

	return serie, nil
}

// Delete deletes a serie
func (s *SerieService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSerieNotFound
		}
		return fmt.Errorf("failed to delete serie: %w", err)
	}
	return nil
}

// GetStats computes match and ranking aggregates for the serie
func (s *SerieService) GetStats(id uuid.UUID) (*SerieStatsResponse, error) {
	serie, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	totalMatches, err := s.matchRepo.CountBySerie(serie.SerieNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	totalTeams, err := s.rankingRepo.CountBySerie(serie.SerieNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to count rankings: %w", err)
	}

	totals, err := s.matchRepo.ScoreTotals(serie.SerieNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scores: %w", err)
	}

	return &SerieStatsResponse{
		Serie:        serie,
		TotalMatches: totalMatches,
		TotalTeams:   totalTeams,
		TotalScore:   totals.TotalScore,
		AverageScore: totals.AverageScore,
	}, nil
}

func (s *SerieService) ensureNumberFree(number int) error {
	existing, err := s.repo.GetByNumber(number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing serie by number: %w", err)
	}
	if existing != nil {
		return apperrors.ErrSerieExists
	}
	return nil
}

func applySerieUpdate(serie *models.Serie, req *UpdateSerieRequest) {
	if req.SerieNumber != nil {
		serie.SerieNumber = *req.SerieNumber
	}
	if req.Name != nil {
		serie.Name = *req.Name
	}
	if req.Description != nil {
		serie.Description = *req.Description
	}
	if req.StartDate != nil {
		serie.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		serie.EndDate = *req.EndDate
	}
	if req.Status != nil {
		serie.Status = *req.Status
	}
	if req.TotalTeams != nil {
		serie.TotalTeams = *req.TotalTeams
	}
	if req.TotalMatches != nil {
		serie.TotalMatches = *req.TotalMatches
	}
	if req.Location != nil {
		serie.Location = *req.Location
	}
	if req.Rules != nil {
		serie.Rules = *req.Rules
	}
	if req.LiveStreamURL != nil {
		serie.LiveStreamURL = *req.LiveStreamURL
	}
}
