package siteconfig

import (
	"time"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	"github.com/orbya/portfolio-backend/pkg/types"
)

// SiteConfigDTO is the wire representation of the singleton site config.
type SiteConfigDTO struct {
	SiteName     string             `json:"siteName"`
	OwnerName    string             `json:"ownerName"`
	Tagline      string             `json:"tagline"`
	Description  string             `json:"description"`
	SystemID     string             `json:"systemId"`
	Location     string             `json:"location"`
	Status       string             `json:"status"`
	Availability string             `json:"availability"`
	WorkType     string             `json:"workType"`
	Social       types.SocialLinks  `json:"social"`
	Colors       types.ColorPalette `json:"colors"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func toDTO(m *models.SiteConfig) *SiteConfigDTO {
	return &SiteConfigDTO{
		SiteName:     m.SiteName,
		OwnerName:    m.OwnerName,
		Tagline:      m.Tagline,
		Description:  m.Description,
		SystemID:     m.SystemID,
		Location:     m.Location,
		Status:       m.Status,
		Availability: m.Availability,
		WorkType:     m.WorkType,
		Social:       m.Social,
		Colors:       m.Colors,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UpdateSiteConfigInput captures a partial update. Nil pointers leave the
// stored value untouched; social and colors merge per key rather than
// replacing the whole map.
type UpdateSiteConfigInput struct {
	SiteName     *string            `json:"siteName"`
	OwnerName    *string            `json:"ownerName"`
	Tagline      *string            `json:"tagline"`
	Description  *string            `json:"description"`
	SystemID     *string            `json:"systemId"`
	Location     *string            `json:"location"`
	Status       *string            `json:"status"`
	Availability *string            `json:"availability"`
	WorkType     *string            `json:"workType"`
	Social       *SocialLinksInput  `json:"social"`
	Colors       *ColorPaletteInput `json:"colors"`
}

// SocialLinksInput mirrors types.SocialLinks with per-key optionality.
type SocialLinksInput struct {
	Email     *string `json:"email"`
	LinkedIn  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
	YouTube   *string `json:"youtube"`
}

// ColorPaletteInput mirrors types.ColorPalette with per-key optionality.
type ColorPaletteInput struct {
	Primary    *string `json:"primary"`
	Background *string `json:"background"`
	Text       *string `json:"text"`
	TextMuted  *string `json:"textMuted"`
	Success    *string `json:"success"`
	Error      *string `json:"error"`
}
