package skills

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
)

type skillRepository interface {
	Create(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes skill operations.
type Service interface {
	List(ctx context.Context) ([]SkillDTO, error)
	Create(ctx context.Context, input CreateSkillInput) (*SkillDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSkillInput) (*SkillDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo skillRepository
}

// NewService builds a skill service with the provided repository.
func NewService(repo skillRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("skill repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]SkillDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list skills")
	}
	out := make([]SkillDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input CreateSkillInput) (*SkillDTO, error) {
	skill, err := s.repo.Create(ctx, input.toModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist skill")
	}
	return toDTO(skill), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSkillInput) (*SkillDTO, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "skill not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load skill")
	}

	if input.Name != nil {
		skill.Name = *input.Name
	}
	if input.Level != nil {
		skill.Level = *input.Level
	}
	if input.Module != nil {
		skill.Module = *input.Module
	}
	if input.Category != nil {
		skill.Category = *input.Category
	}
	if input.Icon != nil {
		skill.Icon = *input.Icon
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update skill")
	}
	return toDTO(skill), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "skill not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete skill")
	}
	return nil
}
