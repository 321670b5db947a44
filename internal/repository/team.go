package repository

import (
	"eurobot-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll retrieves all teams ordered by name
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Count returns the number of teams
func (r *TeamRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Count(&count).Error
	return count, err
}

// ReplaceAll deletes every team and inserts the given set in one transaction
func (r *TeamRepository) ReplaceAll(teams []models.Team) error {
	return replaceAll(r.db, &models.Team{}, teams)
}
