package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handler functions registered on the
// router.
type HandlerBundle struct {
	// Tool endpoints.
	CheckAvailability gin.HandlerFunc
	GetPrice          gin.HandlerFunc
	CalculatePrice    gin.HandlerFunc
	CreateBooking     gin.HandlerFunc
	HumanHandoff      gin.HandlerFunc

	// Catalog endpoints.
	ListCatalog gin.HandlerFunc
}
