package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	"github.com/orbya/portfolio-backend/pkg/enums"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/types"
)

type projectRepository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes project operations.
type Service interface {
	List(ctx context.Context) ([]ProjectDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProjectDTO, error)
	Create(ctx context.Context, input CreateProjectInput) (*ProjectDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*ProjectDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo projectRepository
}

// NewService builds a project service with the provided repository.
func NewService(repo projectRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("project repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ProjectDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list projects")
	}
	out := make([]ProjectDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProjectDTO, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load project")
	}
	return toDTO(project), nil
}

func (s *service) Create(ctx context.Context, input CreateProjectInput) (*ProjectDTO, error) {
	ratio, err := enums.ParseAspectRatio(input.AspectRatio)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	project, err := s.repo.Create(ctx, input.toModel(ratio))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist project")
	}
	return toDTO(project), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*ProjectDTO, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load project")
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Thumbnail != nil {
		project.Thumbnail = *input.Thumbnail
	}
	if input.VideoURL != nil {
		project.VideoURL = *input.VideoURL
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.Tags != nil {
		project.Tags = types.StringList(*input.Tags)
	}
	if input.Year != nil {
		project.Year = *input.Year
	}
	if input.AspectRatio != nil {
		ratio, err := enums.ParseAspectRatio(*input.AspectRatio)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		project.AspectRatio = ratio
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update project")
	}
	return toDTO(project), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete project")
	}
	return nil
}
