package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

type stubCartRepo struct {
	carts   map[string]*models.Cart
	findErr error
	saveErr error
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: map[string]*models.Cart{}}
}

func (s *stubCartRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubCartRepo) FindByOwner(ctx context.Context, ownerEmail string) (*models.Cart, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	record, ok := s.carts[ownerEmail]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	copied.Items = record.Items.Clone()
	return &copied, nil
}

func (s *stubCartRepo) Save(ctx context.Context, record *models.Cart) (*models.Cart, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	copied := *record
	copied.Items = record.Items.Clone()
	s.carts[record.OwnerEmail] = &copied
	return record, nil
}

func (s *stubCartRepo) DeleteByOwner(ctx context.Context, ownerEmail string) error {
	if s.findErr != nil {
		return s.findErr
	}
	delete(s.carts, ownerEmail)
	return nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func coffeeItem(qty int) types.LineItem {
	return types.LineItem{
		ProductID:   "abc123",
		ProductType: enums.ProductTypeCoffee,
		Name:        "Cappuccino",
		Subtitle:    "With Steamed Milk",
		Roasted:     "Medium Roasted",
		Image:       "cappuccino.png",
		Sizes: []types.SizeEntry{
			{Size: "M", Price: types.PriceFromFloat(4.20), Quantity: qty},
		},
	}
}

func TestServiceGetUnknownOwnerReturnsEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())

	items, err := svc.Get(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestServiceGetStorageFailure(t *testing.T) {
	t.Parallel()

	repo := newStubCartRepo()
	repo.findErr = errors.New("connection refused")
	svc := newTestService(t, repo)

	_, err := svc.Get(context.Background(), "ari@example.com")
	if err == nil {
		t.Fatal("expected storage error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestServiceAddAccumulatesSameSize(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	if _, err := svc.Add(ctx, owner, coffeeItem(1)); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(ctx, owner, coffeeItem(2)); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if len(items[0].Sizes) != 1 {
		t.Fatalf("expected one size entry, got %d", len(items[0].Sizes))
	}
	if items[0].Sizes[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Sizes[0].Quantity)
	}
}

func TestServiceAddDistinctSizesCoexist(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	small := coffeeItem(1)
	small.Sizes[0].Size = "S"
	large := coffeeItem(1)
	large.Sizes[0].Size = "L"

	if _, err := svc.Add(ctx, owner, small); err != nil {
		t.Fatalf("add small: %v", err)
	}
	if _, err := svc.Add(ctx, owner, large); err != nil {
		t.Fatalf("add large: %v", err)
	}

	items, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if len(items[0].Sizes) != 2 {
		t.Fatalf("expected two size entries, got %d", len(items[0].Sizes))
	}
	if items[0].Sizes[0].Size != "S" || items[0].Sizes[0].Quantity != 1 {
		t.Fatalf("unexpected first size entry: %+v", items[0].Sizes[0])
	}
	if items[0].Sizes[1].Size != "L" || items[0].Sizes[1].Quantity != 1 {
		t.Fatalf("unexpected second size entry: %+v", items[0].Sizes[1])
	}
}

func TestServiceAddFoldsDuplicateSizeLabelsInPayload(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	item := coffeeItem(1)
	item.Sizes = append(item.Sizes, types.SizeEntry{Size: "M", Price: types.PriceFromFloat(4.20), Quantity: 2})

	if _, err := svc.Add(ctx, owner, item); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if len(items[0].Sizes) != 1 {
		t.Fatalf("expected duplicate labels to fold into one entry, got %+v", items[0].Sizes)
	}
	if items[0].Sizes[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Sizes[0].Quantity)
	}

	if _, err := svc.Add(ctx, owner, coffeeItem(1)); err != nil {
		t.Fatalf("follow-up add: %v", err)
	}
	items, err = svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get after follow-up: %v", err)
	}
	if len(items[0].Sizes) != 1 || items[0].Sizes[0].Quantity != 4 {
		t.Fatalf("expected follow-up add to accumulate into the folded entry, got %+v", items[0].Sizes)
	}
}

func TestServiceReplaceFoldsDuplicateSizeLabels(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	snapshot := types.LineItems{
		{
			ProductID: "abc123",
			Sizes: []types.SizeEntry{
				{Size: "M", Price: types.PriceFromFloat(4.20), Quantity: 1},
				{Size: "S", Price: types.PriceFromFloat(3.50), Quantity: 1},
				{Size: "M", Price: types.PriceFromFloat(4.20), Quantity: 2},
			},
		},
	}

	items, err := svc.Replace(ctx, owner, snapshot)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(items) != 1 || len(items[0].Sizes) != 2 {
		t.Fatalf("expected two folded size entries, got %+v", items)
	}
	if items[0].Sizes[0].Size != "M" || items[0].Sizes[0].Quantity != 3 {
		t.Fatalf("unexpected first entry: %+v", items[0].Sizes[0])
	}
	if items[0].Sizes[1].Size != "S" || items[0].Sizes[1].Quantity != 1 {
		t.Fatalf("unexpected second entry: %+v", items[0].Sizes[1])
	}
}

func TestServiceAddRejectsInvalidLineItem(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	cases := []struct {
		name string
		item types.LineItem
	}{
		{"missing product id", types.LineItem{Sizes: []types.SizeEntry{{Size: "M", Quantity: 1}}}},
		{"no sizes", types.LineItem{ProductID: "abc123"}},
		{"blank size label", types.LineItem{ProductID: "abc123", Sizes: []types.SizeEntry{{Size: " ", Quantity: 1}}}},
		{"zero quantity", types.LineItem{ProductID: "abc123", Sizes: []types.SizeEntry{{Size: "M", Quantity: 0}}}},
		{"negative price", types.LineItem{ProductID: "abc123", Sizes: []types.SizeEntry{{Size: "M", Price: types.PriceFromFloat(-1), Quantity: 1}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, owner, tc.item)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("unexpected error code: %v", err)
			}
			items, err := svc.Get(ctx, owner)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if len(items) != 0 {
				t.Fatalf("rejected add must not leave partial state, got %d items", len(items))
			}
		})
	}
}

func TestServiceReplaceThenGetRoundTrips(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	snapshot := types.LineItems{coffeeItem(2)}
	if _, err := svc.Replace(ctx, owner, snapshot); err != nil {
		t.Fatalf("replace: %v", err)
	}

	items, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != "abc123" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].Sizes[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Sizes[0].Quantity)
	}
}

func TestServiceReplaceCollapsesZeroQuantities(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	snapshot := types.LineItems{
		{
			ProductID: "abc123",
			Sizes: []types.SizeEntry{
				{Size: "S", Price: types.PriceFromFloat(3.50), Quantity: 0},
				{Size: "M", Price: types.PriceFromFloat(4.20), Quantity: 2},
			},
		},
		{
			ProductID: "def456",
			Sizes: []types.SizeEntry{
				{Size: "250gm", Price: types.PriceFromFloat(10.00), Quantity: 0},
			},
		},
	}

	items, err := svc.Replace(ctx, owner, snapshot)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one surviving line item, got %d", len(items))
	}
	if len(items[0].Sizes) != 1 || items[0].Sizes[0].Size != "M" {
		t.Fatalf("expected only size M to survive, got %+v", items[0].Sizes)
	}
}

func TestServiceReplaceEmptyAndClearBothReadBackEmpty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	if _, err := svc.Add(ctx, owner, coffeeItem(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Replace(ctx, owner, types.LineItems{}); err != nil {
		t.Fatalf("replace empty: %v", err)
	}
	items, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get after empty replace: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after empty replace, got %d items", len(items))
	}

	if _, err := svc.Add(ctx, owner, coffeeItem(1)); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if err := svc.Clear(ctx, owner); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, err = svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d items", len(items))
	}
}

func TestServiceRepeatedAddScenario(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()
	owner := "ari@example.com"

	if _, err := svc.Add(ctx, owner, coffeeItem(1)); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(ctx, owner, coffeeItem(1)); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 || len(items[0].Sizes) != 1 {
		t.Fatalf("unexpected cart shape: %+v", items)
	}
	entry := items[0].Sizes[0]
	if entry.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", entry.Quantity)
	}
	lineTotal := entry.Price.Decimal.Mul(decimal.NewFromInt(int64(entry.Quantity)))
	if lineTotal.StringFixed(2) != "8.40" {
		t.Fatalf("expected line total 8.40, got %s", lineTotal.StringFixed(2))
	}
}

func TestServiceOwnerEmailNormalized(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubCartRepo())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "  Ari@Example.COM ", coffeeItem(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	items, err := svc.Get(ctx, "ari@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected normalized owner to resolve the same cart, got %d items", len(items))
	}

	if _, err := svc.Get(ctx, "   "); err == nil {
		t.Fatal("expected validation error for blank owner")
	}
}
