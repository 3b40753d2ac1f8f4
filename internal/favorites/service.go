package favorites

import (
	"context"
	"strings"

	"github.com/lib/pq"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
)

type repository interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Favorite, error)
	Exists(ctx context.Context, ownerEmail, productID string) (bool, error)
	Create(ctx context.Context, record *models.Favorite) (*models.Favorite, error)
	DeleteByOwnerAndProduct(ctx context.Context, ownerEmail, productID string) error
}

// Service exposes business rules for favorites management.
type Service interface {
	List(ctx context.Context, ownerEmail string) ([]FavoriteDTO, error)
	Add(ctx context.Context, ownerEmail string, input AddFavoriteInput) (*FavoriteDTO, error)
	Remove(ctx context.Context, ownerEmail, productID string) error
}

type service struct {
	repo repository
}

// NewService builds a favorites service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorites repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, ownerEmail string) ([]FavoriteDTO, error) {
	owner, err := normalizeOwner(ownerEmail)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorites")
	}
	out := make([]FavoriteDTO, 0, len(records))
	for _, record := range records {
		out = append(out, toDTO(record))
	}
	return out, nil
}

// Add stores the product snapshot under the owner. Adding an already-favorited
// product is a conflict, not a silent no-op.
func (s *service) Add(ctx context.Context, ownerEmail string, input AddFavoriteInput) (*FavoriteDTO, error) {
	owner, err := normalizeOwner(ownerEmail)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	exists, err := s.repo.Exists(ctx, owner, input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check favorite")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "already in favorites")
	}

	record := &models.Favorite{
		OwnerEmail:  owner,
		ProductID:   input.ProductID,
		ProductType: input.ProductType,
		Name:        input.Name,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		Image:       input.Image,
		Rating:      input.Rating,
		RatingCount: input.RatingCount,
		Roasted:     input.Roasted,
		Tags:        pq.StringArray(input.Tags),
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create favorite")
	}
	dto := toDTO(*created)
	return &dto, nil
}

// Remove drops the favorite regardless of prior state.
func (s *service) Remove(ctx context.Context, ownerEmail, productID string) error {
	owner, err := normalizeOwner(ownerEmail)
	if err != nil {
		return err
	}
	if strings.TrimSpace(productID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.repo.DeleteByOwnerAndProduct(ctx, owner, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete favorite")
	}
	return nil
}

func normalizeOwner(email string) (string, error) {
	owner := strings.ToLower(strings.TrimSpace(email))
	if owner == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "owner email is required")
	}
	return owner, nil
}
