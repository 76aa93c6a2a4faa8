package storage

import (
	"context"
	"io"
)

// Store is the file backend the site generator and SEO tools read from and
// write to. Paths are relative to the store's root.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) error
}
