package repository

import (
	"database/sql"

	"eurobot-backend/internal/database/models"

	"gorm.io/gorm"
)

// RankingFilter narrows a ranking listing. Zero values mean no restriction.
type RankingFilter struct {
	Serie *int
	Limit int
}

// RankingRepository handles database operations for rankings
type RankingRepository struct {
	db *gorm.DB
}

// NewRankingRepository creates a new ranking repository
func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

// List retrieves rankings ordered by serie then position
func (r *RankingRepository) List(filter RankingFilter) ([]models.Ranking, error) {
	var rankings []models.Ranking
	query := r.db.Order("serie ASC").Order("position ASC")
	if filter.Serie != nil {
		query = query.Where("serie = ?", *filter.Serie)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	err := query.Find(&rankings).Error
	return rankings, err
}

// GetBySerie retrieves the ranking table of one serie by position; limit <= 0 returns all rows
func (r *RankingRepository) GetBySerie(serie int, limit int) ([]models.Ranking, error) {
	rankings := []models.Ranking{}
	query := r.db.Where("serie = ?", serie).Order("position ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&rankings).Error
	return rankings, err
}

// Count returns the number of ranking rows
func (r *RankingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Ranking{}).Count(&count).Error
	return count, err
}

// CountBySerie returns the number of ranking rows in a serie
func (r *RankingRepository) CountBySerie(serie int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Ranking{}).Where("serie = ?", serie).Count(&count).Error
	return count, err
}

// LatestSerie returns the highest serie number that has ranking rows
func (r *RankingRepository) LatestSerie() (int, bool, error) {
	var latest sql.NullInt64
	row := r.db.Model(&models.Ranking{}).Select("MAX(serie)").Row()
	if err := row.Scan(&latest); err != nil {
		return 0, false, err
	}
	if !latest.Valid {
		return 0, false, nil
	}
	return int(latest.Int64), true, nil
}

// ReplaceAll deletes every ranking and inserts the given set in one transaction
func (r *RankingRepository) ReplaceAll(rankings []models.Ranking) error {
	return replaceAll(r.db, &models.Ranking{}, rankings)
}
