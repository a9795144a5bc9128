// Package pricing computes checkout quotes: subtotal, two-tier shipping
// charge and grand total.
package pricing

const (
	// Flat delivery charges. Orders inside the home district ship for
	// InsideCharge, everywhere else pays OutsideCharge.
	InsideCharge  = 60.0
	OutsideCharge = 120.0
)

type Line struct {
	Price    float64
	Quantity int
}

type Quote struct {
	Subtotal float64  `json:"subtotal"`
	Shipping *float64 `json:"shipping"` // nil until a district is selected
	Total    float64  `json:"total"`
}

// ShippingCharge returns the flat charge for a destination district, or nil
// when no district has been selected yet.
func ShippingCharge(district, homeDistrict string) *float64 {
	if district == "" {
		return nil
	}
	charge := OutsideCharge
	if district == homeDistrict {
		charge = InsideCharge
	}
	return &charge
}

// Compute builds a quote for the given lines. Total includes shipping only
// once a district is known.
func Compute(lines []Line, district, homeDistrict string) Quote {
	var q Quote
	for _, l := range lines {
		q.Subtotal += l.Price * float64(l.Quantity)
	}
	q.Shipping = ShippingCharge(district, homeDistrict)
	q.Total = q.Subtotal
	if q.Shipping != nil {
		q.Total += *q.Shipping
	}
	return q
}

// ClampQuantity bounds a requested quantity to [1, stock]. Stock values
// below 1 still clamp to 1 so an empty-stock product cannot zero out a line.
func ClampQuantity(qty, stock int) int {
	if stock < 1 {
		stock = 1
	}
	if qty < 1 {
		qty = 1
	}
	if qty > stock {
		qty = stock
	}
	return qty
}
