package models

// AvailabilityRequest asks whether a quantity of an item can be supplied
// for an event date. The date is carried as-is and not parsed.
type AvailabilityRequest struct {
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	EventDate string `json:"event_date"`
}

// PriceRequest asks for the price of renting an item. Days is ignored by
// the unit-price lookup and used only when computing a total.
type PriceRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Days     int    `json:"days"`
}

// BookingRequest is an unconfirmed reservation intent. It is echoed back
// to the caller and never stored.
type BookingRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
	EventDate    string `json:"event_date"`
	Location     string `json:"location"`
}

// HandoffRequest asks for the conversation to be escalated to a human
// operator.
type HandoffRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}
