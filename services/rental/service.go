package rental

import (
	"github.com/google/uuid"

	"primerentals/catalog"
	"primerentals/models"
)

// DefaultToolService implements ToolService over an immutable catalog.
// It holds no mutable state, so a single instance serves concurrent
// requests without coordination.
type DefaultToolService struct {
	Catalog     *catalog.Catalog
	Currency    string
	DeliveryFee float64
}

// NewToolService builds a tool service over the given catalog.
func NewToolService(cat *catalog.Catalog, currency string, deliveryFee float64) *DefaultToolService {
	return &DefaultToolService{
		Catalog:     cat,
		Currency:    currency,
		DeliveryFee: deliveryFee,
	}
}

// CheckAvailability reports whether the requested quantity is in stock.
// An unknown item is a soft negative rather than an error: the check is
// advisory and must never break the agent's dialogue flow.
func (s *DefaultToolService) CheckAvailability(body []byte) (*models.AvailabilityResult, error) {
	req, err := parseAvailability(body)
	if err != nil {
		return nil, err
	}

	entry, ok := s.Catalog.Lookup(req.Item)
	if !ok {
		return &models.AvailabilityResult{
			Available: false,
			Reason:    "Item not found",
		}, nil
	}

	requested := req.Quantity
	stock := entry.AvailableQuantity
	return &models.AvailabilityResult{
		Item:              entry.Name,
		RequestedQuantity: &requested,
		Available:         requested <= stock,
		AvailableQuantity: &stock,
	}, nil
}

// GetPrice returns the per-day unit price of an item.
func (s *DefaultToolService) GetPrice(body []byte) (*models.PriceQuote, error) {
	req, err := parsePrice(body)
	if err != nil {
		return nil, err
	}

	entry, ok := s.Catalog.Lookup(req.Item)
	if !ok {
		return nil, errItemNotFound(req.Item)
	}

	return &models.PriceQuote{
		Item:            entry.Name,
		UnitPricePerDay: entry.UnitPrice,
		Currency:        s.Currency,
	}, nil
}

// CalculatePrice computes the full rental cost for an item.
func (s *DefaultToolService) CalculatePrice(body []byte) (*models.CostBreakdown, error) {
	req, err := parsePrice(body)
	if err != nil {
		return nil, err
	}

	entry, ok := s.Catalog.Lookup(req.Item)
	if !ok {
		return nil, errItemNotFound(req.Item)
	}

	quote := ComputeQuote(entry.UnitPrice, req.Quantity, req.Days, s.DeliveryFee)
	return &models.CostBreakdown{
		Item:        entry.Name,
		Quantity:    req.Quantity,
		Days:        req.Days,
		UnitPrice:   entry.UnitPrice,
		Subtotal:    quote.Subtotal,
		DeliveryFee: quote.DeliveryFee,
		TotalPrice:  quote.Total,
		Currency:    s.Currency,
	}, nil
}

// CreateBooking accepts an unconfirmed booking request. The request is
// echoed back verbatim with a reference the agent can quote to the
// customer; nothing is stored and availability is not reserved.
func (s *DefaultToolService) CreateBooking(body []byte) (*models.BookingReceipt, error) {
	req, err := parseBooking(body)
	if err != nil {
		return nil, err
	}

	if _, ok := s.Catalog.Lookup(req.Item); !ok {
		return nil, errItemNotFound(req.Item)
	}

	return &models.BookingReceipt{
		Reference:      uuid.New().String(),
		Status:         "pending",
		Message:        "Booking request received. Availability and pricing will be confirmed.",
		BookingDetails: *req,
	}, nil
}

// HumanHandoff records a request to hand the conversation to a human
// operator.
func (s *DefaultToolService) HumanHandoff(body []byte) (*models.HandoffReceipt, error) {
	req, err := parseHandoff(body)
	if err != nil {
		return nil, err
	}

	return &models.HandoffReceipt{
		Reference: uuid.New().String(),
		Status:    "received",
		Message:   "A team member will contact you shortly.",
		Contact: models.HandoffContact{
			Name:  req.Name,
			Phone: req.Phone,
		},
	}, nil
}
