package cart

import (
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

type sizeEntryPayload struct {
	Size     string      `json:"size" validate:"required"`
	Price    types.Price `json:"price"`
	Quantity int         `json:"quantity" validate:"gte=0"`
}

type lineItemPayload struct {
	ProductID   string             `json:"productId" validate:"required"`
	ProductType string             `json:"productType"`
	Name        string             `json:"name"`
	Subtitle    string             `json:"subtitle"`
	Roasted     string             `json:"roasted"`
	Image       string             `json:"image"`
	Sizes       []sizeEntryPayload `json:"sizes" validate:"required,min=1,dive"`
}

// replaceCartRequest carries the full cart document. Entries with zero
// quantity are accepted here and collapsed by the service.
type replaceCartRequest struct {
	Items []lineItemPayload `json:"items" validate:"dive"`
}

// addItemRequest carries a single line item to merge into the cart.
type addItemRequest struct {
	Item lineItemPayload `json:"item" validate:"required"`
}

func toLineItem(payload lineItemPayload) types.LineItem {
	sizes := make([]types.SizeEntry, 0, len(payload.Sizes))
	for _, entry := range payload.Sizes {
		sizes = append(sizes, types.SizeEntry{
			Size:     entry.Size,
			Price:    entry.Price,
			Quantity: entry.Quantity,
		})
	}
	return types.LineItem{
		ProductID:   payload.ProductID,
		ProductType: productType(payload.ProductType),
		Name:        payload.Name,
		Subtitle:    payload.Subtitle,
		Roasted:     payload.Roasted,
		Image:       payload.Image,
		Sizes:       sizes,
	}
}

func toLineItems(payloads []lineItemPayload) types.LineItems {
	items := make(types.LineItems, 0, len(payloads))
	for _, payload := range payloads {
		items = append(items, toLineItem(payload))
	}
	return items
}
