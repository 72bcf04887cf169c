package models

// AvailabilityResult is the outcome of an availability check. An unknown
// item produces only Available=false plus a Reason; the item fields are
// present only when the item exists in the catalog.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`

	Item              string `json:"item,omitempty"`
	RequestedQuantity *int   `json:"requested_quantity,omitempty"`
	AvailableQuantity *int   `json:"available_quantity,omitempty"`
}

// PriceQuote is the per-day unit price of a catalog item.
type PriceQuote struct {
	Item            string  `json:"item"`
	UnitPricePerDay float64 `json:"unit_price_per_day"`
	Currency        string  `json:"currency"`
}

// CostBreakdown is a full rental cost computation.
type CostBreakdown struct {
	Item        string  `json:"item"`
	Quantity    int     `json:"quantity"`
	Days        int     `json:"days"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	TotalPrice  float64 `json:"total_price"`
	Currency    string  `json:"currency"`
}

// BookingReceipt acknowledges a booking request. BookingDetails echoes the
// validated input verbatim; nothing is persisted.
type BookingReceipt struct {
	Reference      string         `json:"reference"`
	Status         string         `json:"status"`
	Message        string         `json:"message"`
	BookingDetails BookingRequest `json:"booking_details"`
}

// HandoffContact is the contact information passed on to the team.
type HandoffContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// HandoffReceipt acknowledges a human-handoff request.
type HandoffReceipt struct {
	Reference string         `json:"reference"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Contact   HandoffContact `json:"contact"`
}
