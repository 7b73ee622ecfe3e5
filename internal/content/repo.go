package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
)

// Repository handles stat and quote persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to content operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListStats returns the stats in display order.
func (r *Repository) ListStats(ctx context.Context) ([]models.Stat, error) {
	var rows []models.Stat
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListQuotes returns the quotes in display order.
func (r *Repository) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	var rows []models.Quote
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceStatsWithTx deletes every stat row and inserts the replacement
// sequence using the provided transaction.
func (r *Repository) ReplaceStatsWithTx(tx *gorm.DB, rows []models.Stat) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if err := tx.Where("1 = 1").Delete(&models.Stat{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// ReplaceQuotesWithTx mirrors ReplaceStatsWithTx for quotes.
func (r *Repository) ReplaceQuotesWithTx(tx *gorm.DB, rows []models.Quote) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if err := tx.Where("1 = 1").Delete(&models.Quote{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
