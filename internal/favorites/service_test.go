package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
)

type stubFavoritesRepo struct {
	records []models.Favorite
	failAll error
}

func (s *stubFavoritesRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Favorite, error) {
	if s.failAll != nil {
		return nil, s.failAll
	}
	var out []models.Favorite
	for _, record := range s.records {
		if record.OwnerEmail == ownerEmail {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *stubFavoritesRepo) Exists(ctx context.Context, ownerEmail, productID string) (bool, error) {
	if s.failAll != nil {
		return false, s.failAll
	}
	for _, record := range s.records {
		if record.OwnerEmail == ownerEmail && record.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubFavoritesRepo) Create(ctx context.Context, record *models.Favorite) (*models.Favorite, error) {
	if s.failAll != nil {
		return nil, s.failAll
	}
	s.records = append(s.records, *record)
	return record, nil
}

func (s *stubFavoritesRepo) DeleteByOwnerAndProduct(ctx context.Context, ownerEmail, productID string) error {
	if s.failAll != nil {
		return s.failAll
	}
	out := s.records[:0]
	for _, record := range s.records {
		if record.OwnerEmail != ownerEmail || record.ProductID != productID {
			out = append(out, record)
		}
	}
	s.records = out
	return nil
}

func newFavoritesService(t *testing.T, repo repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceAddListRemove(t *testing.T) {
	t.Parallel()

	repo := &stubFavoritesRepo{}
	svc := newFavoritesService(t, repo)
	ctx := context.Background()
	owner := "ari@example.com"

	created, err := svc.Add(ctx, owner, AddFavoriteInput{
		ProductID:   "abc123",
		ProductType: enums.ProductTypeCoffee,
		Name:        "Cappuccino",
		Tags:        []string{"Coffee", "Milk"},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ProductID != "abc123" {
		t.Fatalf("unexpected dto: %+v", created)
	}

	list, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Cappuccino" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if len(list[0].Tags) != 2 {
		t.Fatalf("expected tags preserved, got %+v", list[0].Tags)
	}

	if err := svc.Remove(ctx, owner, "abc123"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	list, err = svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after remove, got %+v", list)
	}

	// Removing again is a no-op, not an error.
	if err := svc.Remove(ctx, owner, "abc123"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestServiceAddDuplicateConflicts(t *testing.T) {
	t.Parallel()

	repo := &stubFavoritesRepo{}
	svc := newFavoritesService(t, repo)
	ctx := context.Background()
	owner := "ari@example.com"

	if _, err := svc.Add(ctx, owner, AddFavoriteInput{ProductID: "abc123"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := svc.Add(ctx, owner, AddFavoriteInput{ProductID: "abc123"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestServiceValidation(t *testing.T) {
	t.Parallel()

	svc := newFavoritesService(t, &stubFavoritesRepo{})
	ctx := context.Background()

	if _, err := svc.Add(ctx, "", AddFavoriteInput{ProductID: "abc123"}); err == nil {
		t.Fatal("expected validation error for blank owner")
	}
	if _, err := svc.Add(ctx, "ari@example.com", AddFavoriteInput{}); err == nil {
		t.Fatal("expected validation error for blank product id")
	}
	if err := svc.Remove(ctx, "ari@example.com", " "); err == nil {
		t.Fatal("expected validation error for blank product id on remove")
	}
}

func TestServiceStorageFailure(t *testing.T) {
	t.Parallel()

	repo := &stubFavoritesRepo{failAll: errors.New("connection refused")}
	svc := newFavoritesService(t, repo)

	_, err := svc.List(context.Background(), "ari@example.com")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error: %v", err)
	}
}
