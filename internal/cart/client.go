package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/logger"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

const defaultSyncTimeout = 10 * time.Second

// Session identifies the signed-in owner a client edits on behalf of. It is
// passed in explicitly so the client never reaches into ambient auth state.
type Session struct {
	Email string
}

// Syncer is the remote cart surface the client persists through. Service
// satisfies it directly.
type Syncer interface {
	Get(ctx context.Context, ownerEmail string) (types.LineItems, error)
	Replace(ctx context.Context, ownerEmail string, items types.LineItems) (types.LineItems, error)
}

// Client holds a local copy of the owner's cart and applies optimistic
// quantity edits. Each edit updates local state synchronously, then hands a
// full snapshot to a background writer. Failed writes are logged and never
// rolled back; Refresh is the reconciliation path back to server truth.
//
// The writer keeps at most one snapshot queued and always writes the latest
// one, so rapid successive edits coalesce instead of racing each other with
// stale overwrites.
type Client struct {
	session Session
	syncer  Syncer
	logg    *logger.Logger
	timeout time.Duration

	mu    sync.Mutex
	items types.LineItems

	updates   chan types.LineItems
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewClient builds a cart client for the session owner and starts its write
// queue. Callers must Close it when the session ends.
func NewClient(session Session, syncer Syncer, logg *logger.Logger) (*Client, error) {
	if strings.TrimSpace(session.Email) == "" {
		return nil, fmt.Errorf("session email required")
	}
	if syncer == nil {
		return nil, fmt.Errorf("cart syncer required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}

	c := &Client{
		session: session,
		syncer:  syncer,
		logg:    logg,
		timeout: defaultSyncTimeout,
		items:   types.LineItems{},
		updates: make(chan types.LineItems, 1),
		done:    make(chan struct{}),
	}
	c.wg.Add(1)
	go c.run()
	return c, nil
}

// Items returns a copy of the current local cart state.
func (c *Client) Items() types.LineItems {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Clone()
}

// Refresh replaces local state with server truth. This is the one path that
// reconciles divergence left behind by failed fire-and-forget writes.
func (c *Client) Refresh(ctx context.Context) (types.LineItems, error) {
	fetched, err := c.syncer.Get(ctx, c.session.Email)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items = fetched.Clone()
	c.mu.Unlock()
	return fetched, nil
}

// AdjustQuantity applies a delta to the quantity of one (product, size) entry.
// The quantity floors at zero; reaching zero removes the size entry, and a
// line item left without sizes is removed with it. Local state updates
// synchronously and the resulting snapshot is queued for persistence.
func (c *Client) AdjustQuantity(productID, size string, delta int) error {
	c.mu.Lock()

	itemIdx := -1
	for i := range c.items {
		if c.items[i].ProductID == productID {
			itemIdx = i
			break
		}
	}
	if itemIdx < 0 {
		c.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "line item not in cart")
	}
	sizeIdx := findSize(c.items[itemIdx].Sizes, size)
	if sizeIdx < 0 {
		c.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "size entry not in cart")
	}

	newQuantity := c.items[itemIdx].Sizes[sizeIdx].Quantity + delta
	if newQuantity < 0 {
		newQuantity = 0
	}

	if newQuantity == 0 {
		item := c.items[itemIdx]
		item.Sizes = append(item.Sizes[:sizeIdx], item.Sizes[sizeIdx+1:]...)
		if len(item.Sizes) == 0 {
			c.items = append(c.items[:itemIdx], c.items[itemIdx+1:]...)
		} else {
			c.items[itemIdx] = item
		}
	} else {
		c.items[itemIdx].Sizes[sizeIdx].Quantity = newQuantity
	}

	snapshot := c.items.Clone()
	c.mu.Unlock()

	c.enqueue(snapshot)
	return nil
}

// Total sums unit price times quantity over every size entry of every line
// item. Pure function of local state.
func (c *Client) Total() types.Price {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, item := range c.items {
		for _, entry := range item.Sizes {
			line := entry.Price.Decimal.Mul(decimal.NewFromInt(int64(entry.Quantity)))
			total = total.Add(line)
		}
	}
	return types.NewPrice(total.Round(2))
}

// Close stops the write queue after draining any pending snapshot.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}

// enqueue replaces whatever snapshot is waiting; only the latest one is worth
// writing.
func (c *Client) enqueue(snapshot types.LineItems) {
	for {
		select {
		case c.updates <- snapshot:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}

func (c *Client) run() {
	defer c.wg.Done()
	for {
		select {
		case <-c.done:
			select {
			case snapshot := <-c.updates:
				c.persist(snapshot)
			default:
			}
			return
		case snapshot := <-c.updates:
			c.persist(snapshot)
		}
	}
}

func (c *Client) persist(snapshot types.LineItems) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	ctx = c.logg.WithOwnerEmail(ctx, c.session.Email)
	if _, err := c.syncer.Replace(ctx, c.session.Email, snapshot); err != nil {
		// Local optimistic state is intentionally kept as-is on failure.
		c.logg.Error(ctx, "cart sync failed", err)
	}
}
