package content

import "github.com/orbya/portfolio-backend/pkg/db/models"

// StatDTO is one home-page counter. Rows carry no public identity: the
// client always submits the full ordered list.
type StatDTO struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
	Unit  string `json:"unit"`
}

// QuoteDTO is one rotating quote.
type QuoteDTO struct {
	Quote  string `json:"quote" validate:"required"`
	Author string `json:"author"`
}

func statToDTO(m *models.Stat) StatDTO {
	return StatDTO{Label: m.Label, Value: m.Value, Unit: m.Unit}
}

func quoteToDTO(m *models.Quote) QuoteDTO {
	return QuoteDTO{Quote: m.Quote, Author: m.Author}
}
