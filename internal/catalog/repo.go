package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
)

// Repository encapsulates catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByType returns catalog rows of one product type in display order.
func (r *Repository) ListByType(ctx context.Context, productType enums.ProductType) ([]models.Product, error) {
	var records []models.Product
	err := r.db.WithContext(ctx).
		Where("type = ?", productType).
		Order("display_index ASC").
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID returns one catalog row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var record models.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a catalog row. Used by seeding.
func (r *Repository) Create(ctx context.Context, record *models.Product) (*models.Product, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// CountByType reports how many rows exist for a product type.
func (r *Repository) CountByType(ctx context.Context, productType enums.ProductType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("type = ?", productType).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
