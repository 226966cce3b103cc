package domain

import "errors"

// Sentinel errors for the export domain. Wrapped errors are matched with
// errors.Is, so always wrap with %w when adding context.
var (
	// ErrDocumentNotFound indicates no stored document matches the
	// requested invoice number.
	ErrDocumentNotFound = errors.New("export document not found")

	// ErrExportUnavailable indicates neither storage tier could accept
	// or serve the document.
	ErrExportUnavailable = errors.New("export storage unavailable")

	// ErrValidation indicates bad or missing input. The operation aborts
	// with no state change.
	ErrValidation = errors.New("export validation failed")
)
