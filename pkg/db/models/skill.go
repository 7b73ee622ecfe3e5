package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill is one proficiency bar on the Skills page. Category is a free-form
// grouping key that drives the page's dynamic sections.
type Skill struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Level     int       `gorm:"column:level;not null;default:0"`
	Module    string    `gorm:"column:module"`
	Category  string    `gorm:"column:category;not null"`
	Icon      string    `gorm:"column:icon"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
