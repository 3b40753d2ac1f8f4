package enums

// ProductType distinguishes brewed coffees from bean bags. It only drives
// default imagery on the clients, never business logic.
type ProductType string

const (
	ProductTypeCoffee ProductType = "coffee"
	ProductTypeBean   ProductType = "bean"
)

// IsValid reports whether the value is a known product type.
func (p ProductType) IsValid() bool {
	switch p {
	case ProductTypeCoffee, ProductTypeBean:
		return true
	}
	return false
}
