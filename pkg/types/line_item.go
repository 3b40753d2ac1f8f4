package types

import "github.com/arimendoza/coffeehaus-backend/pkg/enums"

// SizeEntry is one size variant inside a cart line item. The price is fixed at
// the moment the entry is created and never re-priced against the catalog.
type SizeEntry struct {
	Size     string `json:"size"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
}

// LineItem is a cart entry for one product. Display fields are a denormalized
// snapshot copied from the catalog at add-time; they are intentionally not
// re-synced when the catalog changes.
type LineItem struct {
	ProductID   string            `json:"productId"`
	ProductType enums.ProductType `json:"productType"`
	Name        string            `json:"name"`
	Subtitle    string            `json:"subtitle"`
	Roasted     string            `json:"roasted"`
	Image       string            `json:"image"`
	Sizes       []SizeEntry       `json:"sizes"`
}

// LineItems is the jsonb document column holding a cart's contents.
type LineItems []LineItem

// Clone returns a deep copy so callers can mutate without aliasing the source.
func (items LineItems) Clone() LineItems {
	if items == nil {
		return nil
	}
	out := make(LineItems, len(items))
	for i, item := range items {
		sizes := make([]SizeEntry, len(item.Sizes))
		copy(sizes, item.Sizes)
		item.Sizes = sizes
		out[i] = item
	}
	return out
}
