package models

import (
	"fmt"
	"strings"
)

// ItemName is a value object representing a valid menu item name.
// Encapsulates validation rules: non-blank after trimming, at most 255 bytes.
type ItemName string

const maxItemNameLength = 255

// NewItemName trims s and constructs a valid ItemName, or returns an error if
// constraints are violated.
func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("item name must not be blank")
	}
	if len(s) > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
