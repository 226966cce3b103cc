package domain

import "errors"

// Sentinel errors for the billing domain. Wrapped errors are matched with
// errors.Is, so always wrap with %w when adding context.
var (
	// ErrEmptyOrder indicates an invoice was requested for an order with
	// no lines.
	ErrEmptyOrder = errors.New("order has no lines")

	// ErrInvoiceNotFound indicates no saved invoice matches the requested
	// number.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrValidation indicates bad or missing input. The operation aborts
	// with no state change.
	ErrValidation = errors.New("billing validation failed")
)
