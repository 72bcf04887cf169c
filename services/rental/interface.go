package rental

import "primerentals/models"

// ToolService exposes the tool operations invoked by the conversational
// agent. Each method takes the raw request body, validates it against the
// operation's shape, and returns either the response payload or a
// *RequestError describing why the request was rejected.
type ToolService interface {
	CheckAvailability(body []byte) (*models.AvailabilityResult, error)
	GetPrice(body []byte) (*models.PriceQuote, error)
	CalculatePrice(body []byte) (*models.CostBreakdown, error)
	CreateBooking(body []byte) (*models.BookingReceipt, error)
	HumanHandoff(body []byte) (*models.HandoffReceipt, error)
}
