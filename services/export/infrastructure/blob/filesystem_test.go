package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemTier(t *testing.T) {
	ctx := context.Background()
	tier, err := NewFilesystemTier(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("roundtrip", func(t *testing.T) {
		if err := tier.Put(ctx, "INV-1", []byte("doc")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, found, err := tier.Get(ctx, "INV-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || string(data) != "doc" {
			t.Fatalf("unexpected result: found=%v data=%q", found, data)
		}
	})

	t.Run("absent document", func(t *testing.T) {
		_, found, err := tier.Get(ctx, "INV-404")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatal("expected absence")
		}
	})

	t.Run("delete reports presence", func(t *testing.T) {
		if err := tier.Put(ctx, "INV-2", []byte("doc")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		removed, err := tier.Delete(ctx, "INV-2")
		if err != nil || !removed {
			t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
		}
		removed, err = tier.Delete(ctx, "INV-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed {
			t.Fatal("second delete should report absence")
		}
	})

	t.Run("path traversal neutralized", func(t *testing.T) {
		dir := t.TempDir()
		tier, err := NewFilesystemTier(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tier.Put(ctx, "../escape", []byte("doc")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape")); err == nil {
			t.Fatal("document escaped the export directory")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 file inside the export dir, got %d", len(entries))
		}
	})
}
