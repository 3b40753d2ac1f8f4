package favorites

import (
	"time"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
)

// FavoriteDTO is one favorited product with the display snapshot taken at
// favorite-time.
type FavoriteDTO struct {
	ProductID   string            `json:"productId"`
	ProductType enums.ProductType `json:"productType"`
	Name        string            `json:"name"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Rating      float64           `json:"rating"`
	RatingCount string            `json:"ratingCount"`
	Roasted     string            `json:"roasted"`
	Tags        []string          `json:"tags"`
	CreatedAt   time.Time         `json:"created_at"`
}

// AddFavoriteInput captures the snapshot stored when a product is favorited.
type AddFavoriteInput struct {
	ProductID   string
	ProductType enums.ProductType
	Name        string
	Subtitle    string
	Description string
	Image       string
	Rating      float64
	RatingCount string
	Roasted     string
	Tags        []string
}

func toDTO(record models.Favorite) FavoriteDTO {
	return FavoriteDTO{
		ProductID:   record.ProductID,
		ProductType: record.ProductType,
		Name:        record.Name,
		Subtitle:    record.Subtitle,
		Description: record.Description,
		Image:       record.Image,
		Rating:      record.Rating,
		RatingCount: record.RatingCount,
		Roasted:     record.Roasted,
		Tags:        []string(record.Tags),
		CreatedAt:   record.CreatedAt,
	}
}
