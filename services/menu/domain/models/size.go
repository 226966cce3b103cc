package models

import "fmt"

// Size is a fixed size label for items sold in variants (pizzas).
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
	SizeFamily Size = "Family"
)

// SizeOrder is the fixed display order for size variants. Expansion and
// selection surfaces must iterate sizes in this order so pseudo-row
// identities stay stable.
var SizeOrder = []Size{SizeSmall, SizeMedium, SizeLarge, SizeFamily}

// ParseSize validates a size label against the fixed enumerated set.
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeSmall, SizeMedium, SizeLarge, SizeFamily:
		return Size(s), nil
	}
	return "", fmt.Errorf("unknown size %q", s)
}

// String returns the underlying label.
func (s Size) String() string {
	return string(s)
}
