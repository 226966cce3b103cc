package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	t.Run("valid normal name", func(t *testing.T) {
		n, err := NewItemName("Zinger Burger")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Zinger Burger" {
			t.Fatalf("expected %q, got %q", "Zinger Burger", n.String())
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		n, err := NewItemName("  Pasta  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Pasta" {
			t.Fatalf("expected %q, got %q", "Pasta", n.String())
		}
	})

	t.Run("valid 255 characters", func(t *testing.T) {
		s := strings.Repeat("x", 255)
		n, err := NewItemName(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(n.String()) != 255 {
			t.Fatalf("expected string of length 255, got %d", len(n.String()))
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := NewItemName("")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace only returns error", func(t *testing.T) {
		_, err := NewItemName("   ")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("256 characters returns error", func(t *testing.T) {
		s := strings.Repeat("x", 256)
		_, err := NewItemName(s)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
