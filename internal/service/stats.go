package service

import (
	"fmt"

	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/repository"
)

const (
	topTeamsLimit      = 5
	defaultLatestSerie = 1
)

// StatsResponse is the dashboard summary
type StatsResponse struct {
	TotalTeams     int64                   `json:"totalTeams"`
	TotalMatches   int64                   `json:"totalMatches"`
	TotalRankings  int64                   `json:"totalRankings"`
	TotalSeries    int64                   `json:"totalSeries"`
	MatchesBySerie []repository.SerieCount `json:"matchesBySerie"`
	TopTeams       []models.Ranking        `json:"topTeams"`
	LastKnownSerie int                     `json:"lastKnownSerie"`
}

// StatsService computes cross-collection aggregates
type StatsService struct {
	teamRepo    repository.TeamRepositoryInterface
	matchRepo   repository.MatchRepositoryInterface
	rankingRepo repository.RankingRepositoryInterface
	serieRepo   repository.SerieRepositoryInterface
}

// NewStatsService creates a new stats service
func NewStatsService(
	teamRepo repository.TeamRepositoryInterface,
	matchRepo repository.MatchRepositoryInterface,
	rankingRepo repository.RankingRepositoryInterface,
	serieRepo repository.SerieRepositoryInterface,
) *StatsService {
	return &StatsService{
		teamRepo:    teamRepo,
		matchRepo:   matchRepo,
		rankingRepo: rankingRepo,
		serieRepo:   serieRepo,
	}
}

// GetStats builds the summary. The top teams come from the highest serie that has rankings, or serie 1.
func (s *StatsService) GetStats() (*StatsResponse, error) {
	resp := &StatsResponse{}
	var err error

	if resp.TotalTeams, err = s.teamRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	if resp.TotalMatches, err = s.matchRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}
	if resp.TotalRankings, err = s.rankingRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count rankings: %w", err)
	}
	if resp.TotalSeries, err = s.serieRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count series: %w", err)
	}

	if resp.MatchesBySerie, err = s.matchRepo.CountsPerSerie(); err != nil {
		return nil, fmt.Errorf("failed to group matches by serie: %w", err)
	}
	if resp.MatchesBySerie == nil {
		resp.MatchesBySerie = []repository.SerieCount{}
	}

	latest, ok, err := s.rankingRepo.LatestSerie()
	if err != nil {
		return nil, fmt.Errorf("failed to find latest serie: %w", err)
	}
	if !ok {
		latest = defaultLatestSerie
	}
	resp.LastKnownSerie = latest

	if resp.TopTeams, err = s.rankingRepo.GetBySerie(latest, topTeamsLimit); err != nil {
		return nil, fmt.Errorf("failed to get top teams: %w", err)
	}
	if resp.TopTeams == nil {
		resp.TopTeams = []models.Ranking{}
	}

	return resp, nil
}
