package contact

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
)

// Repository handles contact-message persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to contact-message operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new message row.
func (r *Repository) Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns every message, newest first.
func (r *Repository) List(ctx context.Context) ([]models.ContactMessage, error) {
	var rows []models.ContactMessage
	// Stored order; admin clients reverse for display.
	if err := r.db.WithContext(ctx).Order("timestamp ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a message row. Returns gorm.ErrRecordNotFound when no row
// matched the id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ContactMessage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
