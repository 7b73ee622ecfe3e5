package siteconfig

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orbya/portfolio-backend/pkg/db/models"
)

// Repository handles the singleton site-config row.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to site-config operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the singleton row.
func (r *Repository) Get(ctx context.Context) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := r.db.WithContext(ctx).Where("id = ?", models.SiteConfigID).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save upserts the singleton row.
func (r *Repository) Save(ctx context.Context, cfg *models.SiteConfig) error {
	cfg.ID = models.SiteConfigID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(cfg).Error
}

// EnsureExists inserts the provided defaults when no row is present yet.
func (r *Repository) EnsureExists(ctx context.Context, defaults *models.SiteConfig) error {
	defaults.ID = models.SiteConfigID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error
}
