package rental

// DefaultDeliveryFee is the flat delivery charge applied once per quote,
// independent of quantity, days, or distance.
const DefaultDeliveryFee = 100

// DefaultCurrency is the currency code stamped on every price-bearing
// response.
const DefaultCurrency = "GHS"

// Quote is the arithmetic result of a rental cost computation.
type Quote struct {
	Subtotal    float64
	DeliveryFee float64
	Total       float64
}

// ComputeQuote prices quantity units rented for days at unitPrice per
// unit per day. It does no range checking; the boundary decides what
// inputs are acceptable.
func ComputeQuote(unitPrice float64, quantity, days int, deliveryFee float64) Quote {
	subtotal := unitPrice * float64(quantity) * float64(days)
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}
