package content

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db"
	"github.com/orbya/portfolio-backend/pkg/db/models"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
)

type contentRepository interface {
	ListStats(ctx context.Context) ([]models.Stat, error)
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	ReplaceStatsWithTx(tx *gorm.DB, rows []models.Stat) error
	ReplaceQuotesWithTx(tx *gorm.DB, rows []models.Quote) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the stats and quotes sequences. Both are replaced
// wholesale on every save so the admin panel's reordering never needs
// per-row endpoints.
type Service interface {
	ListStats(ctx context.Context) ([]StatDTO, error)
	ReplaceStats(ctx context.Context, stats []StatDTO) ([]StatDTO, error)
	ListQuotes(ctx context.Context) ([]QuoteDTO, error)
	ReplaceQuotes(ctx context.Context, quotes []QuoteDTO) ([]QuoteDTO, error)
}

type service struct {
	repo contentRepository
	tx   txRunner
}

// NewService builds a content service with the provided repository and
// transaction runner.
func NewService(repo contentRepository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("content repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

var _ txRunner = (*db.Client)(nil)

func (s *service) ListStats(ctx context.Context) ([]StatDTO, error) {
	rows, err := s.repo.ListStats(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stats")
	}
	out := make([]StatDTO, 0, len(rows))
	for i := range rows {
		out = append(out, statToDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) ReplaceStats(ctx context.Context, stats []StatDTO) ([]StatDTO, error) {
	rows := make([]models.Stat, 0, len(stats))
	for i, st := range stats {
		rows = append(rows, models.Stat{Position: i, Label: st.Label, Value: st.Value, Unit: st.Unit})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.ReplaceStatsWithTx(tx, rows)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace stats")
	}
	return s.ListStats(ctx)
}

func (s *service) ListQuotes(ctx context.Context) ([]QuoteDTO, error) {
	rows, err := s.repo.ListQuotes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list quotes")
	}
	out := make([]QuoteDTO, 0, len(rows))
	for i := range rows {
		out = append(out, quoteToDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) ReplaceQuotes(ctx context.Context, quotes []QuoteDTO) ([]QuoteDTO, error) {
	rows := make([]models.Quote, 0, len(quotes))
	for i, q := range quotes {
		rows = append(rows, models.Quote{Position: i, Quote: q.Quote, Author: q.Author})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.ReplaceQuotesWithTx(tx, rows)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace quotes")
	}
	return s.ListQuotes(ctx)
}
