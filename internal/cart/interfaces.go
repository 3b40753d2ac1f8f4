package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
)

// Repository defines the persistence surface required by the cart service.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByOwner(ctx context.Context, ownerEmail string) (*models.Cart, error)
	Save(ctx context.Context, record *models.Cart) (*models.Cart, error)
	DeleteByOwner(ctx context.Context, ownerEmail string) error
}
