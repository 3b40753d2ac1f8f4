package cart

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/logger"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

type stubSyncer struct {
	mu        sync.Mutex
	remote    types.LineItems
	replaceN  int
	replaceCh chan types.LineItems
	failWith  error
}

func newStubSyncer() *stubSyncer {
	return &stubSyncer{replaceCh: make(chan types.LineItems, 16)}
}

func (s *stubSyncer) Get(ctx context.Context, ownerEmail string) (types.LineItems, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	if s.remote == nil {
		return types.LineItems{}, nil
	}
	return s.remote.Clone(), nil
}

func (s *stubSyncer) Replace(ctx context.Context, ownerEmail string, items types.LineItems) (types.LineItems, error) {
	s.mu.Lock()
	s.replaceN++
	err := s.failWith
	if err == nil {
		s.remote = items.Clone()
	}
	s.mu.Unlock()

	s.replaceCh <- items.Clone()
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *stubSyncer) lastRemote() types.LineItems {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remote.Clone()
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})
}

func newTestClient(t *testing.T, syncer Syncer) *Client {
	t.Helper()
	client, err := NewClient(Session{Email: "ari@example.com"}, syncer, quietLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func awaitReplace(t *testing.T, ch chan types.LineItems) types.LineItems {
	t.Helper()
	select {
	case items := <-ch:
		return items
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for persist call")
		return nil
	}
}

func seedClient(t *testing.T, client *Client, syncer *stubSyncer, items types.LineItems) {
	t.Helper()
	syncer.mu.Lock()
	syncer.remote = items.Clone()
	syncer.mu.Unlock()
	if _, err := client.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
}

func twoSizeItem() types.LineItem {
	return types.LineItem{
		ProductID: "abc123",
		Name:      "Cappuccino",
		Sizes: []types.SizeEntry{
			{Size: "S", Price: types.PriceFromFloat(3.50), Quantity: 2},
			{Size: "M", Price: types.PriceFromFloat(4.20), Quantity: 1},
		},
	}
}

func TestClientAdjustQuantityIncrements(t *testing.T) {
	t.Parallel()

	syncer := newStubSyncer()
	client := newTestClient(t, syncer)
	seedClient(t, client, syncer, types.LineItems{twoSizeItem()})

	if err := client.AdjustQuantity("abc123", "M", 1); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	items := client.Items()
	if items[0].Sizes[1].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Sizes[1].Quantity)
	}

	persisted := awaitReplace(t, syncer.replaceCh)
	if persisted[0].Sizes[1].Quantity != 2 {
		t.Fatalf("persisted snapshot should carry the edit, got %+v", persisted)
	}
}

func TestClientZeroQuantityRemovesEntryAndItem(t *testing.T) {
	t.Parallel()

	syncer := newStubSyncer()
	client := newTestClient(t, syncer)
	seedClient(t, client, syncer, types.LineItems{twoSizeItem()})

	if err := client.AdjustQuantity("abc123", "M", -1); err != nil {
		t.Fatalf("adjust M: %v", err)
	}
	items := client.Items()
	if len(items) != 1 || len(items[0].Sizes) != 1 || items[0].Sizes[0].Size != "S" {
		t.Fatalf("expected only size S to remain, got %+v", items)
	}

	// Deltas below the floor clamp to zero rather than going negative.
	if err := client.AdjustQuantity("abc123", "S", -5); err != nil {
		t.Fatalf("adjust S: %v", err)
	}
	if items := client.Items(); len(items) != 0 {
		t.Fatalf("expected empty cart once all sizes removed, got %+v", items)
	}

	if err := client.AdjustQuantity("abc123", "S", 1); err == nil {
		t.Fatal("expected not-found for removed entry")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientTotal(t *testing.T) {
	t.Parallel()

	syncer := newStubSyncer()
	client := newTestClient(t, syncer)
	seedClient(t, client, syncer, types.LineItems{
		{
			ProductID: "abc123",
			Sizes: []types.SizeEntry{
				{Size: "S", Price: types.PriceFromFloat(3.50), Quantity: 2},
			},
		},
		{
			ProductID: "def456",
			Sizes: []types.SizeEntry{
				{Size: "250gm", Price: types.PriceFromFloat(10.00), Quantity: 1},
			},
		},
	})

	if got := client.Total().StringFixed(2); got != "17.00" {
		t.Fatalf("expected total 17.00, got %s", got)
	}
}

func TestClientPersistFailureKeepsLocalState(t *testing.T) {
	t.Parallel()

	syncer := newStubSyncer()
	client := newTestClient(t, syncer)
	seedClient(t, client, syncer, types.LineItems{twoSizeItem()})

	syncer.mu.Lock()
	syncer.failWith = errors.New("store unreachable")
	syncer.mu.Unlock()

	if err := client.AdjustQuantity("abc123", "M", 3); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	awaitReplace(t, syncer.replaceCh)

	// No rollback: the optimistic edit stays even though the write failed.
	items := client.Items()
	if items[0].Sizes[1].Quantity != 4 {
		t.Fatalf("expected local quantity 4 after failed persist, got %d", items[0].Sizes[1].Quantity)
	}

	// Refresh is the reconciliation path back to server truth.
	syncer.mu.Lock()
	syncer.failWith = nil
	syncer.mu.Unlock()
	refreshed, err := client.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed[0].Sizes[1].Quantity != 1 {
		t.Fatalf("expected server quantity 1 after refresh, got %d", refreshed[0].Sizes[1].Quantity)
	}
}

func TestClientCoalescesRapidEdits(t *testing.T) {
	t.Parallel()

	syncer := newStubSyncer()
	client := newTestClient(t, syncer)
	seedClient(t, client, syncer, types.LineItems{twoSizeItem()})

	for i := 0; i < 10; i++ {
		if err := client.AdjustQuantity("abc123", "M", 1); err != nil {
			t.Fatalf("adjust %d: %v", i, err)
		}
	}
	client.Close()

	// However many writes landed, the final remote state must match the final
	// local state; stale snapshots never overwrite newer ones.
	remote := syncer.lastRemote()
	if remote[0].Sizes[1].Quantity != 11 {
		t.Fatalf("expected final persisted quantity 11, got %d", remote[0].Sizes[1].Quantity)
	}
}
