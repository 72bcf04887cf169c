package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"primerentals/services/rental"
	"primerentals/utils"
)

// ToolHandler serves the tool endpoints invoked by the conversational
// agent.
type ToolHandler struct {
	Svc    rental.ToolService
	Logger *zap.Logger
}

func NewToolHandler(svc rental.ToolService, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{Svc: svc, Logger: logger}
}

// CheckAvailability handles POST /tools/check-availability.
func (h *ToolHandler) CheckAvailability(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	res, err := h.Svc.CheckAvailability(body)
	if err != nil {
		h.respondError(c, "check-availability", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetPrice handles POST /tools/get-price.
func (h *ToolHandler) GetPrice(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	res, err := h.Svc.GetPrice(body)
	if err != nil {
		h.respondError(c, "get-price", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CalculatePrice handles POST /tools/calculate-price.
func (h *ToolHandler) CalculatePrice(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	res, err := h.Svc.CalculatePrice(body)
	if err != nil {
		h.respondError(c, "calculate-price", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateBooking handles POST /tools/create-booking.
func (h *ToolHandler) CreateBooking(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	res, err := h.Svc.CreateBooking(body)
	if err != nil {
		h.respondError(c, "create-booking", err)
		return
	}
	h.Logger.Info("create-booking: booking request received",
		zap.String("reference", res.Reference),
		zap.String("item", res.BookingDetails.Item),
		zap.Int("quantity", res.BookingDetails.Quantity),
	)
	c.JSON(http.StatusOK, res)
}

// HumanHandoff handles POST /tools/handoff.
func (h *ToolHandler) HumanHandoff(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	res, err := h.Svc.HumanHandoff(body)
	if err != nil {
		h.respondError(c, "handoff", err)
		return
	}
	h.Logger.Info("handoff: escalation requested",
		zap.String("reference", res.Reference),
		zap.String("name", res.Contact.Name),
	)
	c.JSON(http.StatusOK, res)
}

// respondError maps the service error taxonomy onto HTTP status codes:
// empty/malformed bodies are 400, schema violations 422, unknown items
// 404. Anything else is an unexpected server error.
func (h *ToolHandler) respondError(c *gin.Context, op string, err error) {
	var reqErr *rental.RequestError
	if !errors.As(err, &reqErr) {
		h.Logger.Error("unexpected tool error", zap.String("op", op), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}

	h.Logger.Warn("rejected tool request",
		zap.String("op", op),
		zap.String("kind", string(reqErr.Kind)),
	)

	switch reqErr.Kind {
	case rental.KindEmptyBody:
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
	case rental.KindMalformedJSON:
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON", "message": reqErr.Message})
	case rental.KindSchemaViolation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request", "fields": reqErr.Fields})
	case rental.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", reqErr.Error())
	}
}
