package admin

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orbya/portfolio-backend/pkg/db/models"
)

// Repository handles the singleton admin-credential row.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to credential operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the singleton row.
func (r *Repository) Get(ctx context.Context) (*models.AdminCredential, error) {
	var cred models.AdminCredential
	if err := r.db.WithContext(ctx).Where("id = ?", models.AdminCredentialID).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

// EnsureExists inserts the seed credential when no row is present yet.
func (r *Repository) EnsureExists(ctx context.Context, seed *models.AdminCredential) error {
	seed.ID = models.AdminCredentialID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error
}

// UpdateHash replaces the stored hash and bumps the version.
func (r *Repository) UpdateHash(ctx context.Context, hash string, version int64) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminCredential{}).
		Where("id = ?", models.AdminCredentialID).
		Updates(map[string]any{"password_hash": hash, "version": version}).Error
}
