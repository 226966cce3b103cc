package domain

import "errors"

// Sentinel errors for the menu domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the referenced menu item does not exist.
	ErrItemNotFound = errors.New("menu item not found")

	// ErrDuplicateItem indicates a flat-priced item with the same name already
	// exists in the category. Size-variant items may coexist with same-named
	// siblings, so this only fires for flat pricing.
	ErrDuplicateItem = errors.New("menu item already exists in category")

	// ErrUnknownCategory indicates the referenced category label is not part
	// of the live category set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDuplicateCategory indicates the category label is already present
	// (case-sensitive exact match).
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrProtectedCategory indicates an attempt to delete a category the
	// configuration marks as undeletable.
	ErrProtectedCategory = errors.New("category is protected")

	// ErrValidation indicates bad or missing input (blank name, bad pricing
	// shape, non-positive price). The operation aborts with no state change.
	ErrValidation = errors.New("menu validation failed")
)
