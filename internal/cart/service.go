package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns the cart merge protocol: fetch, wholesale replace, incremental
// add-to-cart, and clear. Every write goes through collapse so a size entry
// with quantity <= 0, or a line item with no sizes, is never persisted.
type Service interface {
	Get(ctx context.Context, ownerEmail string) (types.LineItems, error)
	Replace(ctx context.Context, ownerEmail string, items types.LineItems) (types.LineItems, error)
	Add(ctx context.Context, ownerEmail string, item types.LineItem) (types.LineItems, error)
	Clear(ctx context.Context, ownerEmail string) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// Get returns the owner's cart contents. A missing cart is an empty cart,
// never an error.
func (s *service) Get(ctx context.Context, ownerEmail string) (types.LineItems, error) {
	owner, err := normalizeOwner(ownerEmail)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.LineItems{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if record.Items == nil {
		return types.LineItems{}, nil
	}
	return record.Items, nil
}

// Replace overwrites the owner's cart wholesale. The caller's snapshot is
// trusted for ordering and content, but zero-quantity entries are collapsed
// before persisting.
func (s *service) Replace(ctx context.Context, ownerEmail string, items types.LineItems) (types.LineItems, error) {
	owner, err := normalizeOwner(ownerEmail)
	if err != nil {
		return nil, err
	}

	collapsed := collapse(items.Clone())

	var saved types.LineItems
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		record, err := s.loadOrInit(ctx, txRepo, owner)
		if err != nil {
			return err
		}
		record.Items = collapsed
		stored, err := txRepo.Save(ctx, record)
		if err != nil {
			return err
		}
		saved = stored.Items
		return nil
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return saved, nil
}

// Add merges one line item into the owner's cart. Repeated adds of the same
// (productId, size) accumulate quantity rather than overwrite it.
func (s *service) Add(ctx context.Context, ownerEmail string, item types.LineItem) (types.LineItems, error) {
	owner, err := normalizeOwner(ownerEmail)
	if err != nil {
		return nil, err
	}
	if err := validateLineItem(item); err != nil {
		return nil, err
	}

	var saved types.LineItems
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		record, err := s.loadOrInit(ctx, txRepo, owner)
		if err != nil {
			return err
		}
		record.Items = merge(record.Items, item)
		stored, err := txRepo.Save(ctx, record)
		if err != nil {
			return err
		}
		saved = stored.Items
		return nil
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return saved, nil
}

// Clear deletes the owner's cart document. Observably equivalent to replacing
// with an empty list: the next Get returns no items either way.
func (s *service) Clear(ctx context.Context, ownerEmail string) error {
	owner, err := normalizeOwner(ownerEmail)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByOwner(ctx, owner); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart")
	}
	return nil
}

func (s *service) loadOrInit(ctx context.Context, repo Repository, owner string) (*models.Cart, error) {
	record, err := repo.FindByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Cart{OwnerEmail: owner, Items: types.LineItems{}}, nil
		}
		return nil, err
	}
	return record, nil
}

// merge applies the add-to-cart rule: an unseen product is appended wholesale;
// for a known product, quantities accumulate per matching size label and
// unseen size labels are appended as new variants. The incoming payload is
// folded first so a line item never persists two entries with the same label,
// even when the duplicates arrive inside a single add.
func merge(items types.LineItems, incoming types.LineItem) types.LineItems {
	incoming.Sizes = foldSizes(incoming.Sizes)
	for i := range items {
		if items[i].ProductID != incoming.ProductID {
			continue
		}
		for _, entry := range incoming.Sizes {
			if idx := findSize(items[i].Sizes, entry.Size); idx >= 0 {
				items[i].Sizes[idx].Quantity += entry.Quantity
			} else {
				items[i].Sizes = append(items[i].Sizes, entry)
			}
		}
		return items
	}
	return append(items, incoming)
}

// collapse drops size entries with quantity <= 0, folds duplicate size labels
// within each line item, and drops line items left without sizes, preserving
// order of everything that survives.
func collapse(items types.LineItems) types.LineItems {
	out := items[:0]
	for _, item := range items {
		sizes := item.Sizes[:0]
		for _, entry := range item.Sizes {
			if entry.Quantity > 0 {
				sizes = append(sizes, entry)
			}
		}
		sizes = foldSizes(sizes)
		if len(sizes) == 0 {
			continue
		}
		item.Sizes = sizes
		out = append(out, item)
	}
	if out == nil {
		return types.LineItems{}
	}
	return out
}

// foldSizes accumulates quantities of entries sharing a size label. The first
// occurrence keeps its position and price; later duplicates fold into it.
func foldSizes(entries []types.SizeEntry) []types.SizeEntry {
	out := make([]types.SizeEntry, 0, len(entries))
	for _, entry := range entries {
		if idx := findSize(out, entry.Size); idx >= 0 {
			out[idx].Quantity += entry.Quantity
			continue
		}
		out = append(out, entry)
	}
	return out
}

func findSize(entries []types.SizeEntry, size string) int {
	for i := range entries {
		if entries[i].Size == size {
			return i
		}
	}
	return -1
}

func validateLineItem(item types.LineItem) error {
	if strings.TrimSpace(item.ProductID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if len(item.Sizes) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "line item must have at least one size")
	}
	for _, entry := range item.Sizes {
		if strings.TrimSpace(entry.Size) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "size label is required")
		}
		if entry.Quantity < 1 {
			return pkgerrors.New(pkgerrors.CodeValidation, "size quantity must be positive")
		}
		if entry.Price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "size price cannot be negative")
		}
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
