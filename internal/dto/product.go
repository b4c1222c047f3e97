package dto

import "ecocart/internal/models"

type CreateProductRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Brand          string                 `json:"brand" validate:"required"`
	Category       string                 `json:"category" validate:"required"`
	Price          float64                `json:"price"`
	Description    string                 `json:"description" validate:"required"`
	Sustainability *models.Sustainability `json:"sustainability" validate:"required"`
}

type UpdateProductRequest struct {
	Name           string                 `json:"name"`
	Brand          string                 `json:"brand"`
	Category       string                 `json:"category"`
	Price          float64                `json:"price"`
	Description    string                 `json:"description"`
	Sustainability *models.Sustainability `json:"sustainability"`
}

type ProductResponse struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name"`
	Brand               string                 `json:"brand"`
	Category            string                 `json:"category"`
	Price               float64                `json:"price"`
	Description         string                 `json:"description"`
	Sustainability      *models.Sustainability `json:"sustainability,omitempty"`
	SustainabilityScore int                    `json:"sustainabilityScore"`
	CreatedAt           string                 `json:"createdAt"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:                  p.ID.String(),
		Name:                p.Name,
		Brand:               p.Brand,
		Category:            p.Category,
		Price:               p.Price,
		Description:         p.Description,
		Sustainability:      p.Sustainability,
		SustainabilityScore: p.SustainabilityScore,
		CreatedAt:           p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
