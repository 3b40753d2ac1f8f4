package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

// CartRepository encapsulates cart document persistence.
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository binds the repository to the provided GORM handle.
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *CartRepository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &CartRepository{db: tx}
}

// FindByOwner returns the cart document for the owner email.
func (r *CartRepository) FindByOwner(ctx context.Context, ownerEmail string) (*models.Cart, error) {
	var record models.Cart
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Save inserts or updates the cart document. A nil items slice is persisted as
// an empty document so the jsonb column never holds SQL NULL.
func (r *CartRepository) Save(ctx context.Context, record *models.Cart) (*models.Cart, error) {
	if record.Items == nil {
		record.Items = types.LineItems{}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteByOwner removes the owner's cart document. Deleting a missing cart is
// not an error.
func (r *CartRepository) DeleteByOwner(ctx context.Context, ownerEmail string) error {
	return r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Delete(&models.Cart{}).Error
}
