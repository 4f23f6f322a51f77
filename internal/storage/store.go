package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageStore persists uploaded school images and yields a stable reference
// string (public path or absolute URL) to record against the school row. The
// intake pipeline does not care which backend is behind it.
type ImageStore interface {
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// ObjectName builds a collision-resistant file name from a timestamp plus a
// random suffix, preserving the original extension.
func ObjectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("school-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
