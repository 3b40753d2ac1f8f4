package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

// Product is a catalog row for both brewed coffees and bean bags. Cart line
// items copy the display fields at add-time instead of joining back here.
type Product struct {
	ID                uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Type              enums.ProductType `gorm:"column:type;type:text;not null;index"`
	Name              string            `gorm:"column:name;type:text;not null"`
	Description       string            `gorm:"column:description;type:text"`
	Price             types.Price       `gorm:"column:price;type:numeric(10,2);not null"`
	Image             string            `gorm:"column:image;type:text"`
	Category          string            `gorm:"column:category;type:text"`
	Roasted           string            `gorm:"column:roasted;type:text"`
	Ingredients       string            `gorm:"column:ingredients;type:text"`
	SpecialIngredient string            `gorm:"column:special_ingredient;type:text"`
	AverageRating     float64           `gorm:"column:average_rating;not null;default:0"`
	RatingsCount      string            `gorm:"column:ratings_count;type:text"`
	DisplayIndex      int               `gorm:"column:display_index;not null;default:0"`
	CreatedAt         time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
