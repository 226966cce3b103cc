// Package blob provides the storage tiers for export documents: a
// filesystem tier for normal operation and an inline key-value tier used
// when the filesystem is not available.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/export/domain"
)

// FilesystemTier stores documents as files under a directory, one file per
// invoice.
type FilesystemTier struct {
	dir string
}

// NewFilesystemTier creates the directory if needed and returns the tier.
func NewFilesystemTier(dir string) (*FilesystemTier, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir %s: %w", dir, err)
	}
	return &FilesystemTier{dir: dir}, nil
}

// Name implements domain.BlobTier.
func (t *FilesystemTier) Name() string { return domain.TierPrimary }

func (t *FilesystemTier) path(invoiceNumber string) string {
	// invoice numbers are generator-issued, but never trust them as paths
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(invoiceNumber)
	return filepath.Join(t.dir, "Invoice_"+safe+".pdf")
}

// Put writes the document via a temp file and rename, so readers never see
// a partial write.
func (t *FilesystemTier) Put(ctx context.Context, invoiceNumber string, data []byte) error {
	path := t.path(invoiceNumber)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// Get reads the document, reporting absence without error.
func (t *FilesystemTier) Get(ctx context.Context, invoiceNumber string) ([]byte, bool, error) {
	data, err := os.ReadFile(t.path(invoiceNumber))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", t.path(invoiceNumber), err)
	}
	return data, true, nil
}

// Delete removes the document, reporting whether it existed.
func (t *FilesystemTier) Delete(ctx context.Context, invoiceNumber string) (bool, error) {
	err := os.Remove(t.path(invoiceNumber))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", t.path(invoiceNumber), err)
	}
	return true, nil
}
