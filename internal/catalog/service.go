package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

type repository interface {
	ListByType(ctx context.Context, productType enums.ProductType) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, record *models.Product) (*models.Product, error)
}

// Service exposes read access to the product catalog plus the create path used
// by seeding.
type Service interface {
	ListCoffees(ctx context.Context) ([]ProductDTO, error)
	ListBeans(ctx context.Context) ([]ProductDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
}

type service struct {
	repo repository
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: repo}, nil
}

// CreateProductInput captures a catalog row to insert.
type CreateProductInput struct {
	Type              enums.ProductType
	Name              string
	Description       string
	Price             float64
	Image             string
	Category          string
	Roasted           string
	Ingredients       string
	SpecialIngredient string
	AverageRating     float64
	RatingsCount      string
	DisplayIndex      int
}

func (s *service) ListCoffees(ctx context.Context) ([]ProductDTO, error) {
	return s.listByType(ctx, enums.ProductTypeCoffee)
}

func (s *service) ListBeans(ctx context.Context) ([]ProductDTO, error) {
	return s.listByType(ctx, enums.ProductTypeBean)
}

func (s *service) listByType(ctx context.Context, productType enums.ProductType) ([]ProductDTO, error) {
	records, err := s.repo.ListByType(ctx, productType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	return toDTOs(records), nil
}

// GetByID returns one catalog row. Unlike cart fetches, a missing product is a
// genuine not-found.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	dto := toDTO(*record)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product type")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative")
	}

	record := &models.Product{
		Type:              input.Type,
		Name:              input.Name,
		Description:       input.Description,
		Price:             types.PriceFromFloat(input.Price),
		Image:             input.Image,
		Category:          input.Category,
		Roasted:           input.Roasted,
		Ingredients:       input.Ingredients,
		SpecialIngredient: input.SpecialIngredient,
		AverageRating:     input.AverageRating,
		RatingsCount:      input.RatingsCount,
		DisplayIndex:      input.DisplayIndex,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	dto := toDTO(*created)
	return &dto, nil
}
