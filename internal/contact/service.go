package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
)

type messageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageDTO is the wire representation of a contact submission.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateMessageInput captures a public contact-form submission. Identity and
// timestamp are assigned server-side.
type CreateMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Service exposes contact-message operations. Create is public; List and
// Delete sit behind the admin gate.
type Service interface {
	Create(ctx context.Context, input CreateMessageInput) (*MessageDTO, error)
	List(ctx context.Context) ([]MessageDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo messageRepository
	now  func() time.Time
}

// NewService builds a contact service with the provided repository.
func NewService(repo messageRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func toDTO(m *models.ContactMessage) *MessageDTO {
	return &MessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Timestamp: m.Timestamp,
	}
}

func (s *service) Create(ctx context.Context, input CreateMessageInput) (*MessageDTO, error) {
	msg, err := s.repo.Create(ctx, &models.ContactMessage{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist contact message")
	}
	return toDTO(msg), nil
}

func (s *service) List(ctx context.Context) ([]MessageDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list contact messages")
	}
	out := make([]MessageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete contact message")
	}
	return nil
}
