package skills

import (
	"time"

	"github.com/google/uuid"

	"github.com/orbya/portfolio-backend/pkg/db/models"
)

// SkillDTO is the wire representation of a skill bar.
type SkillDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Module    string    `json:"module"`
	Category  string    `json:"category"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(m *models.Skill) *SkillDTO {
	return &SkillDTO{
		ID:        m.ID,
		Name:      m.Name,
		Level:     m.Level,
		Module:    m.Module,
		Category:  m.Category,
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateSkillInput captures the fields accepted when creating a skill.
type CreateSkillInput struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"gte=0,lte=100"`
	Module   string `json:"module"`
	Category string `json:"category" validate:"required"`
	Icon     string `json:"icon"`
}

// UpdateSkillInput captures the mutable skill fields.
type UpdateSkillInput struct {
	Name     *string `json:"name"`
	Level    *int    `json:"level" validate:"omitempty,gte=0,lte=100"`
	Module   *string `json:"module"`
	Category *string `json:"category"`
	Icon     *string `json:"icon"`
}

func (in CreateSkillInput) toModel() *models.Skill {
	return &models.Skill{
		ID:       uuid.New(),
		Name:     in.Name,
		Level:    in.Level,
		Module:   in.Module,
		Category: in.Category,
		Icon:     in.Icon,
	}
}
