package skills

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
)

// Repository handles skill persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to skill operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new skill row.
func (r *Repository) Create(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

// FindByID loads a skill by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List returns every skill grouped by category, oldest first within a group.
func (r *Repository) List(ctx context.Context) ([]models.Skill, error) {
	var rows []models.Skill
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided skill.
func (r *Repository) Update(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

// Delete removes a skill row. Returns gorm.ErrRecordNotFound when no row
// matched the id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Skill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
