package cart

import (
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

// cartDocument is the wire shape for the owner's cart. Items is always
// present, even for an empty or missing cart.
type cartDocument struct {
	Items types.LineItems `json:"items"`
}

func newCartDocument(items types.LineItems) cartDocument {
	if items == nil {
		items = types.LineItems{}
	}
	return cartDocument{Items: items}
}

func productType(raw string) enums.ProductType {
	return enums.ProductType(raw)
}
