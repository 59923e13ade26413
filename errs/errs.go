// Package errs defines the error taxonomy for the fulfillment core and the
// explicit mapping from error kinds to HTTP status codes used at the edge.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidRequest
	KindNotFound
	KindInsufficientStock
	KindTransaction
)

type Error struct {
	Kind   Kind
	Entity string // for KindNotFound: what was missing ("customer", "menu item", ...)
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// InvalidRequest marks a malformed request: the caller's fault, never retried.
func InvalidRequest(format string, args ...any) error {
	return &Error{Kind: KindInvalidRequest, Msg: fmt.Sprintf(format, args...)}
}

// NotFound marks a referential integrity failure against an existing catalog.
func NotFound(entity string, id any) error {
	return &Error{
		Kind:   KindNotFound,
		Entity: entity,
		Msg:    fmt.Sprintf("%s %v not found", entity, id),
	}
}

// Transaction wraps an underlying store error. Eligible for caller-level retry
// with a fresh transaction; never retried internally.
func Transaction(msg string, err error) error {
	return &Error{Kind: KindTransaction, Msg: msg, Err: err}
}

// InsufficientStockError is a business-rule failure expected under normal
// operation; it carries the figures the presentation layer shows.
type InsufficientStockError struct {
	IngredientID string
	Required     float64
	Available    float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for ingredient %s: required %.2f, available %.2f",
		e.IngredientID, e.Required, e.Available)
}

// KindOf reports the taxonomy kind of err, or KindUnknown for errors produced
// outside this package.
func KindOf(err error) Kind {
	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		return KindInsufficientStock
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// HTTPStatus is the boundary mapping table from error kinds to status codes.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
