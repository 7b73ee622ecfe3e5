package siteconfig

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/types"
)

type siteConfigRepository interface {
	Get(ctx context.Context) (*models.SiteConfig, error)
	Save(ctx context.Context, cfg *models.SiteConfig) error
	EnsureExists(ctx context.Context, defaults *models.SiteConfig) error
}

// Service exposes the singleton site configuration.
type Service interface {
	EnsureSeeded(ctx context.Context) error
	Get(ctx context.Context) (*SiteConfigDTO, error)
	Update(ctx context.Context, input UpdateSiteConfigInput) (*SiteConfigDTO, error)
}

type service struct {
	repo siteConfigRepository
}

// NewService builds a site-config service with the provided repository.
func NewService(repo siteConfigRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("site config repository required")
	}
	return &service{repo: repo}, nil
}

func defaultSiteConfig() *models.SiteConfig {
	return &models.SiteConfig{
		SiteName: "ORBYA",
		Status:   "ONLINE",
		Colors: types.ColorPalette{
			Primary:    "#FF4D00",
			Background: "#000000",
			Text:       "#FFFFFF",
			TextMuted:  "rgba(255,255,255,0.6)",
			Success:    "#00FF00",
			Error:      "#FF0000",
		},
	}
}

// EnsureSeeded inserts the default row on first run. Safe to call on every
// startup.
func (s *service) EnsureSeeded(ctx context.Context) error {
	if err := s.repo.EnsureExists(ctx, defaultSiteConfig()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed site config")
	}
	return nil
}

func (s *service) Get(ctx context.Context) (*SiteConfigDTO, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.EnsureSeeded(ctx); err != nil {
				return nil, err
			}
			cfg, err = s.repo.Get(ctx)
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load site config")
		}
	}
	return toDTO(cfg), nil
}

func (s *service) Update(ctx context.Context, input UpdateSiteConfigInput) (*SiteConfigDTO, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load site config")
		}
		cfg = defaultSiteConfig()
	}

	applyUpdate(cfg, input)

	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save site config")
	}
	return toDTO(cfg), nil
}

func applyUpdate(cfg *models.SiteConfig, input UpdateSiteConfigInput) {
	if input.SiteName != nil {
		cfg.SiteName = *input.SiteName
	}
	if input.OwnerName != nil {
		cfg.OwnerName = *input.OwnerName
	}
	if input.Tagline != nil {
		cfg.Tagline = *input.Tagline
	}
	if input.Description != nil {
		cfg.Description = *input.Description
	}
	if input.SystemID != nil {
		cfg.SystemID = *input.SystemID
	}
	if input.Location != nil {
		cfg.Location = *input.Location
	}
	if input.Status != nil {
		cfg.Status = *input.Status
	}
	if input.Availability != nil {
		cfg.Availability = *input.Availability
	}
	if input.WorkType != nil {
		cfg.WorkType = *input.WorkType
	}
	if input.Social != nil {
		mergeSocial(&cfg.Social, *input.Social)
	}
	if input.Colors != nil {
		mergeColors(&cfg.Colors, *input.Colors)
	}
}

func mergeSocial(dst *types.SocialLinks, in SocialLinksInput) {
	if in.Email != nil {
		dst.Email = *in.Email
	}
	if in.LinkedIn != nil {
		dst.LinkedIn = *in.LinkedIn
	}
	if in.Instagram != nil {
		dst.Instagram = *in.Instagram
	}
	if in.YouTube != nil {
		dst.YouTube = *in.YouTube
	}
}

func mergeColors(dst *types.ColorPalette, in ColorPaletteInput) {
	if in.Primary != nil {
		dst.Primary = *in.Primary
	}
	if in.Background != nil {
		dst.Background = *in.Background
	}
	if in.Text != nil {
		dst.Text = *in.Text
	}
	if in.TextMuted != nil {
		dst.TextMuted = *in.TextMuted
	}
	if in.Success != nil {
		dst.Success = *in.Success
	}
	if in.Error != nil {
		dst.Error = *in.Error
	}
}
