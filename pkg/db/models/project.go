package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/orbya/portfolio-backend/pkg/enums"
	"github.com/orbya/portfolio-backend/pkg/types"
)

// Project is one portfolio entry rendered on the Work and Home pages.
type Project struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Title       string            `gorm:"column:title;not null"`
	Category    string            `gorm:"column:category;not null"`
	Description string            `gorm:"column:description"`
	Thumbnail   string            `gorm:"column:thumbnail"`
	VideoURL    string            `gorm:"column:video_url"`
	Featured    bool              `gorm:"column:featured;not null;default:false"`
	Tags        types.StringList  `gorm:"column:tags;type:text"`
	Year        int               `gorm:"column:year"`
	AspectRatio enums.AspectRatio `gorm:"column:aspect_ratio;not null;default:'16:9'"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
