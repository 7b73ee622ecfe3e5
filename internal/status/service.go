package status

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
)

// CheckDTO is one recorded uptime probe.
type CheckDTO struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"clientName"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateCheckInput names the probing client.
type CreateCheckInput struct {
	ClientName string `json:"clientName" validate:"required"`
}

// Service records and lists uptime probes from monitoring clients.
type Service interface {
	Create(ctx context.Context, input CreateCheckInput) (*CheckDTO, error)
	List(ctx context.Context) ([]CheckDTO, error)
}

// Repository handles status-check persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to status-check operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, check *models.StatusCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *Repository) List(ctx context.Context) ([]models.StatusCheck, error) {
	var rows []models.StatusCheck
	if err := r.db.WithContext(ctx).Order("timestamp ASC").Limit(1000).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type checkRepository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context) ([]models.StatusCheck, error)
}

type service struct {
	repo checkRepository
	now  func() time.Time
}

// NewService builds a status service with the provided repository.
func NewService(repo checkRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("status repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateCheckInput) (*CheckDTO, error) {
	check := &models.StatusCheck{
		ID:         uuid.New(),
		ClientName: input.ClientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, check); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist status check")
	}
	return &CheckDTO{ID: check.ID, ClientName: check.ClientName, Timestamp: check.Timestamp}, nil
}

func (s *service) List(ctx context.Context) ([]CheckDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list status checks")
	}
	out := make([]CheckDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, CheckDTO{ID: row.ID, ClientName: row.ClientName, Timestamp: row.Timestamp})
	}
	return out, nil
}
