package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

// ProductDTO is the catalog row shape returned to clients.
type ProductDTO struct {
	ID                uuid.UUID         `json:"id"`
	Type              enums.ProductType `json:"type"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Price             types.Price       `json:"price"`
	Image             string            `json:"image"`
	Category          string            `json:"category"`
	Roasted           string            `json:"roasted"`
	Ingredients       string            `json:"ingredients"`
	SpecialIngredient string            `json:"special_ingredient"`
	AverageRating     float64           `json:"average_rating"`
	RatingsCount      string            `json:"ratings_count"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func toDTO(record models.Product) ProductDTO {
	return ProductDTO{
		ID:                record.ID,
		Type:              record.Type,
		Name:              record.Name,
		Description:       record.Description,
		Price:             record.Price,
		Image:             record.Image,
		Category:          record.Category,
		Roasted:           record.Roasted,
		Ingredients:       record.Ingredients,
		SpecialIngredient: record.SpecialIngredient,
		AverageRating:     record.AverageRating,
		RatingsCount:      record.RatingsCount,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}

func toDTOs(records []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(records))
	for _, record := range records {
		out = append(out, toDTO(record))
	}
	return out
}
