package projects

import (
	"time"

	"github.com/google/uuid"

	"github.com/orbya/portfolio-backend/pkg/db/models"
	"github.com/orbya/portfolio-backend/pkg/enums"
	"github.com/orbya/portfolio-backend/pkg/types"
)

// ProjectDTO is the wire representation of a project.
type ProjectDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"videoUrl"`
	Featured    bool      `json:"featured"`
	Tags        []string  `json:"tags"`
	Year        int       `json:"year"`
	AspectRatio string    `json:"aspectRatio"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toDTO(m *models.Project) *ProjectDTO {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &ProjectDTO{
		ID:          m.ID,
		Title:       m.Title,
		Category:    m.Category,
		Description: m.Description,
		Thumbnail:   m.Thumbnail,
		VideoURL:    m.VideoURL,
		Featured:    m.Featured,
		Tags:        tags,
		Year:        m.Year,
		AspectRatio: string(m.AspectRatio),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreateProjectInput captures the fields accepted when creating a project.
type CreateProjectInput struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	VideoURL    string   `json:"videoUrl"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
	Year        int      `json:"year"`
	AspectRatio string   `json:"aspectRatio"`
}

// UpdateProjectInput captures the mutable project fields. Nil pointers leave
// the stored value untouched.
type UpdateProjectInput struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Thumbnail   *string   `json:"thumbnail"`
	VideoURL    *string   `json:"videoUrl"`
	Featured    *bool     `json:"featured"`
	Tags        *[]string `json:"tags"`
	Year        *int      `json:"year"`
	AspectRatio *string   `json:"aspectRatio"`
}

func (in CreateProjectInput) toModel(ratio enums.AspectRatio) *models.Project {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Project{
		ID:          uuid.New(),
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		VideoURL:    in.VideoURL,
		Featured:    in.Featured,
		Tags:        types.StringList(tags),
		Year:        in.Year,
		AspectRatio: ratio,
	}
}
