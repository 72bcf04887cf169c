package rental

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the ways a tool request can be rejected. All
// kinds are client errors; the transport layer maps them to status codes.
type ErrorKind string

const (
	KindEmptyBody       ErrorKind = "emptyBody"
	KindMalformedJSON   ErrorKind = "malformedJSON"
	KindSchemaViolation ErrorKind = "schemaViolation"
	KindNotFound        ErrorKind = "notFound"
)

// FieldError reports a single field that failed validation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// RequestError is a rejected tool request. Fields is populated only for
// schema violations.
type RequestError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
}

func (e *RequestError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(parts, "; "))
}

func errEmptyBody() error {
	return &RequestError{Kind: KindEmptyBody, Message: "request body is empty"}
}

func errMalformedJSON(detail string) error {
	return &RequestError{Kind: KindMalformedJSON, Message: detail}
}

func errSchemaViolation(fields []FieldError) error {
	return &RequestError{Kind: KindSchemaViolation, Message: "request does not match the expected shape", Fields: fields}
}

func errItemNotFound(item string) error {
	return &RequestError{Kind: KindNotFound, Message: fmt.Sprintf("item %q not found in catalog", item)}
}
