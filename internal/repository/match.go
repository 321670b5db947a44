package repository

import (
	"eurobot-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchFilter narrows a match listing. Zero values mean no restriction.
type MatchFilter struct {
	Serie *int
	Limit int
}

// SerieCount is one bucket of the matches-per-serie histogram
type SerieCount struct {
	Serie int   `json:"_id" gorm:"column:serie"`
	Count int64 `json:"count" gorm:"column:count"`
}

// ScoreTotals aggregates combined match scores of a serie
type ScoreTotals struct {
	TotalScore   int64   `gorm:"column:total_score"`
	AverageScore float64 `gorm:"column:average_score"`
}

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// List retrieves matches ordered by serie then match number
func (r *MatchRepository) List(filter MatchFilter) ([]models.Match, error) {
	var matches []models.Match
	query := r.db.Order("serie ASC").Order("match_number ASC")
	if filter.Serie != nil {
		query = query.Where("serie = ?", *filter.Serie)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	err := query.Find(&matches).Error
	return matches, err
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByTeamName retrieves every match where either side carries the given team name
func (r *MatchRepository) GetByTeamName(name string) ([]models.Match, error) {
	matches := []models.Match{}
	err := r.db.
		Where("team1_name = ? OR team2_name = ?", name, name).
		Order("serie ASC").Order("match_number ASC").
		Find(&matches).Error
	return matches, err
}

// Count returns the number of matches
func (r *MatchRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Match{}).Count(&count).Error
	return count, err
}

// CountBySerie returns the number of matches in a serie
func (r *MatchRepository) CountBySerie(serie int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Match{}).Where("serie = ?", serie).Count(&count).Error
	return count, err
}

// CountsPerSerie groups matches by serie, ascending
func (r *MatchRepository) CountsPerSerie() ([]SerieCount, error) {
	counts := []SerieCount{}
	err := r.db.Model(&models.Match{}).
		Select("serie, COUNT(*) AS count").
		Group("serie").
		Order("serie ASC").
		Scan(&counts).Error
	return counts, err
}

// ScoreTotals sums and averages team1_score + team2_score over a serie
func (r *MatchRepository) ScoreTotals(serie int) (*ScoreTotals, error) {
	var totals ScoreTotals
	err := r.db.Model(&models.Match{}).
		Select("COALESCE(SUM(team1_score + team2_score), 0) AS total_score, "+
			"COALESCE(AVG(team1_score + team2_score), 0) AS average_score").
		Where("serie = ?", serie).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// ReplaceAll deletes every match and inserts the given set in one transaction
func (r *MatchRepository) ReplaceAll(matches []models.Match) error {
	return replaceAll(r.db, &models.Match{}, matches)
}
