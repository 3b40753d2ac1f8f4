package favorites

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
)

// Repository encapsulates favorites persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByOwner returns the owner's favorites, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Favorite, error) {
	var records []models.Favorite
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Exists reports whether the owner already favorited the product.
func (r *Repository) Exists(ctx context.Context, ownerEmail, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("owner_email = ? AND product_id = ?", ownerEmail, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a favorite row.
func (r *Repository) Create(ctx context.Context, record *models.Favorite) (*models.Favorite, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteByOwnerAndProduct drops the favorite if it exists.
func (r *Repository) DeleteByOwnerAndProduct(ctx context.Context, ownerEmail, productID string) error {
	return r.db.WithContext(ctx).
		Where("owner_email = ? AND product_id = ?", ownerEmail, productID).
		Delete(&models.Favorite{}).Error
}
