package models

import (
	"time"

	"github.com/orbya/portfolio-backend/pkg/types"
)

// SiteConfig is a singleton row (id fixed to 1) read on every page load.
type SiteConfig struct {
	ID           int64              `gorm:"column:id;primaryKey"`
	SiteName     string             `gorm:"column:site_name"`
	OwnerName    string             `gorm:"column:owner_name"`
	Tagline      string             `gorm:"column:tagline"`
	Description  string             `gorm:"column:description"`
	SystemID     string             `gorm:"column:system_id"`
	Location     string             `gorm:"column:location"`
	Status       string             `gorm:"column:status"`
	Availability string             `gorm:"column:availability"`
	WorkType     string             `gorm:"column:work_type"`
	Social       types.SocialLinks  `gorm:"column:social;type:text"`
	Colors       types.ColorPalette `gorm:"column:colors;type:text"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// SiteConfigID is the fixed primary key of the singleton row.
const SiteConfigID int64 = 1
