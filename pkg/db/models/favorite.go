package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
)

// Favorite links an owner to a liked product, with a display snapshot taken at
// favorite-time so the list renders without a catalog join.
type Favorite struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerEmail  string            `gorm:"column:owner_email;type:text;not null;index:favorites_owner_idx;uniqueIndex:favorites_owner_product_key"`
	ProductID   string            `gorm:"column:product_id;type:text;not null;uniqueIndex:favorites_owner_product_key"`
	ProductType enums.ProductType `gorm:"column:product_type;type:text"`
	Name        string            `gorm:"column:name;type:text"`
	Subtitle    string            `gorm:"column:subtitle;type:text"`
	Description string            `gorm:"column:description;type:text"`
	Image       string            `gorm:"column:image;type:text"`
	Rating      float64           `gorm:"column:rating;not null;default:0"`
	RatingCount string            `gorm:"column:rating_count;type:text"`
	Roasted     string            `gorm:"column:roasted;type:text"`
	Tags        pq.StringArray    `gorm:"column:tags;type:text[]"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
}
