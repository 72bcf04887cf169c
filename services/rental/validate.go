package rental

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"primerentals/models"
)

// Decode shapes use pointer fields so that a missing field is
// distinguishable from a zero value. Zero or negative quantity/days pass
// validation; only presence and primitive type are enforced here.
type availabilityShape struct {
	Item      *string `json:"item" validate:"required"`
	Quantity  *int    `json:"quantity" validate:"required"`
	EventDate *string `json:"event_date" validate:"required"`
}

type priceShape struct {
	Item     *string `json:"item" validate:"required"`
	Quantity *int    `json:"quantity" validate:"required"`
	Days     *int    `json:"days" validate:"required"`
}

type bookingShape struct {
	CustomerName *string `json:"customer_name" validate:"required"`
	Phone        *string `json:"phone" validate:"required"`
	Item         *string `json:"item" validate:"required"`
	Quantity     *int    `json:"quantity" validate:"required"`
	EventDate    *string `json:"event_date" validate:"required"`
	Location     *string `json:"location" validate:"required"`
}

type handoffShape struct {
	Name    *string `json:"name" validate:"required"`
	Phone   *string `json:"phone" validate:"required"`
	Message *string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field errors under their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode parses the raw body into the given shape, classifying failures
// per the error taxonomy: empty body, malformed JSON, or a schema
// violation with per-field detail.
func decode(body []byte, shape any) error {
	if len(body) == 0 {
		return errEmptyBody()
	}

	if err := json.Unmarshal(body, shape); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field == "" {
				// Top-level value is not an object.
				return errMalformedJSON("request body must be a JSON object")
			}
			return errSchemaViolation([]FieldError{{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("must be of type %s, got %s", typeErr.Type, typeErr.Value),
			}})
		}
		return errMalformedJSON(err.Error())
	}

	if err := validate.Struct(shape); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, FieldError{Field: fe.Field(), Reason: "this field is required"})
			}
			return errSchemaViolation(fields)
		}
		return errMalformedJSON(err.Error())
	}

	return nil
}

func parseAvailability(body []byte) (*models.AvailabilityRequest, error) {
	var s availabilityShape
	if err := decode(body, &s); err != nil {
		return nil, err
	}
	return &models.AvailabilityRequest{
		Item:      *s.Item,
		Quantity:  *s.Quantity,
		EventDate: *s.EventDate,
	}, nil
}

func parsePrice(body []byte) (*models.PriceRequest, error) {
	var s priceShape
	if err := decode(body, &s); err != nil {
		return nil, err
	}
	return &models.PriceRequest{
		Item:     *s.Item,
		Quantity: *s.Quantity,
		Days:     *s.Days,
	}, nil
}

func parseBooking(body []byte) (*models.BookingRequest, error) {
	var s bookingShape
	if err := decode(body, &s); err != nil {
		return nil, err
	}
	return &models.BookingRequest{
		CustomerName: *s.CustomerName,
		Phone:        *s.Phone,
		Item:         *s.Item,
		Quantity:     *s.Quantity,
		EventDate:    *s.EventDate,
		Location:     *s.Location,
	}, nil
}

func parseHandoff(body []byte) (*models.HandoffRequest, error) {
	var s handoffShape
	if err := decode(body, &s); err != nil {
		return nil, err
	}
	req := &models.HandoffRequest{
		Name:  *s.Name,
		Phone: *s.Phone,
	}
	if s.Message != nil {
		req.Message = *s.Message
	}
	return req, nil
}
