package rental

import (
	"errors"
	"testing"
)

func requestKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error is %T, want *RequestError: %v", err, err)
	}
	return reqErr.Kind
}

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error is %T, want *RequestError: %v", err, err)
	}
	return reqErr.Fields
}

func TestParseEmptyBody(t *testing.T) {
	_, err := parseAvailability(nil)
	if err == nil {
		t.Fatal("expected error for empty body")
	}
	if kind := requestKind(t, err); kind != KindEmptyBody {
		t.Errorf("kind = %s, want %s", kind, KindEmptyBody)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := parseAvailability([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if kind := requestKind(t, err); kind != KindMalformedJSON {
		t.Errorf("kind = %s, want %s", kind, KindMalformedJSON)
	}
}

func TestParseNonObjectBody(t *testing.T) {
	// Valid JSON, but not an object.
	_, err := parseAvailability([]byte(`"not json"`))
	if err == nil {
		t.Fatal("expected error for non-object body")
	}
	if kind := requestKind(t, err); kind != KindMalformedJSON {
		t.Errorf("kind = %s, want %s", kind, KindMalformedJSON)
	}
}

func TestParseMissingFields(t *testing.T) {
	_, err := parseAvailability([]byte(`{}`))
	if err == nil {
		t.Fatal("expected error for empty object")
	}
	if kind := requestKind(t, err); kind != KindSchemaViolation {
		t.Fatalf("kind = %s, want %s", kind, KindSchemaViolation)
	}

	fields := fieldErrors(t, err)
	if len(fields) != 3 {
		t.Fatalf("got %d field errors, want 3: %v", len(fields), fields)
	}
	seen := map[string]bool{}
	for _, f := range fields {
		seen[f.Field] = true
	}
	for _, want := range []string{"item", "quantity", "event_date"} {
		if !seen[want] {
			t.Errorf("missing field error for %q", want)
		}
	}
}

func TestParseWrongFieldType(t *testing.T) {
	_, err := parsePrice([]byte(`{"item": "chairs", "quantity": "ten", "days": 3}`))
	if err == nil {
		t.Fatal("expected error for string quantity")
	}
	if kind := requestKind(t, err); kind != KindSchemaViolation {
		t.Fatalf("kind = %s, want %s", kind, KindSchemaViolation)
	}

	fields := fieldErrors(t, err)
	if len(fields) != 1 {
		t.Fatalf("got %d field errors, want 1: %v", len(fields), fields)
	}
	if fields[0].Field != "quantity" {
		t.Errorf("field error names %q, want quantity", fields[0].Field)
	}
}

func TestParsePermitsZeroQuantity(t *testing.T) {
	// Zero and negative quantities are accepted at the boundary; the
	// calculator prices whatever it is given.
	req, err := parsePrice([]byte(`{"item": "chairs", "quantity": 0, "days": -2}`))
	if err != nil {
		t.Fatalf("parsePrice rejected zero quantity: %v", err)
	}
	if req.Quantity != 0 || req.Days != -2 {
		t.Errorf("parsed quantity=%d days=%d, want 0 and -2", req.Quantity, req.Days)
	}
}

func TestParseBookingAllFieldsRequired(t *testing.T) {
	_, err := parseBooking([]byte(`{"customer_name": "Ama", "item": "chairs"}`))
	if err == nil {
		t.Fatal("expected error for incomplete booking")
	}
	if kind := requestKind(t, err); kind != KindSchemaViolation {
		t.Fatalf("kind = %s, want %s", kind, KindSchemaViolation)
	}
	if got := len(fieldErrors(t, err)); got != 4 {
		t.Errorf("got %d field errors, want 4 (phone, quantity, event_date, location)", got)
	}
}

func TestParseHandoffMessageOptional(t *testing.T) {
	req, err := parseHandoff([]byte(`{"name": "Kofi", "phone": "+233200000000"}`))
	if err != nil {
		t.Fatalf("parseHandoff failed without message: %v", err)
	}
	if req.Message != "" {
		t.Errorf("message = %q, want empty", req.Message)
	}

	req, err = parseHandoff([]byte(`{"name": "Kofi", "phone": "+233200000000", "message": "call me"}`))
	if err != nil {
		t.Fatalf("parseHandoff failed with message: %v", err)
	}
	if req.Message != "call me" {
		t.Errorf("message = %q, want %q", req.Message, "call me")
	}
}

func TestParseIgnoresUnknownFields(t *testing.T) {
	req, err := parseAvailability([]byte(`{"item": "chairs", "quantity": 10, "event_date": "2025-12-01", "extra": true}`))
	if err != nil {
		t.Fatalf("parseAvailability rejected unknown field: %v", err)
	}
	if req.Item != "chairs" {
		t.Errorf("item = %q, want chairs", req.Item)
	}
}
