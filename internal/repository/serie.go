package repository

import (
	"eurobot-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SerieRepository handles database operations for series
type SerieRepository struct {
	db *gorm.DB
}

// NewSerieRepository creates a new serie repository
func NewSerieRepository(db *gorm.DB) *SerieRepository {
	return &SerieRepository{db: db}
}

// Create creates a new serie
func (r *SerieRepository) Create(serie *models.Serie) error {
	return r.db.Create(serie).Error
}

// GetAll retrieves all series ordered by serie number
func (r *SerieRepository) GetAll() ([]models.Serie, error) {
	var series []models.Serie
	err := r.db.Order("serie_number ASC").Find(&series).Error
	return series, err
}

// GetByID retrieves a serie by ID
func (r *SerieRepository) GetByID(id uuid.UUID) (*models.Serie, error) {
	var serie models.Serie
	err := r.db.First(&serie, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &serie, nil
}

// GetByNumber retrieves a serie by its serie number
func (r *SerieRepository) GetByNumber(number int) (*models.Serie, error) {
	var serie models.Serie
	err := r.db.First(&serie, "serie_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &serie, nil
}

// Update saves every field of the serie
func (r *SerieRepository) Update(serie *models.Serie) error {
	return r.db.Save(serie).Error
}

// Delete deletes a serie
func (r *SerieRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Serie{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of series
func (r *SerieRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Serie{}).Count(&count).Error
	return count, err
}

// ReplaceAll deletes every serie and inserts the given set in one transaction
func (r *SerieRepository) ReplaceAll(series []models.Serie) error {
	return replaceAll(r.db, &models.Serie{}, series)
}
