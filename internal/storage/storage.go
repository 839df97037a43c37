package storage

import (
	"context"
	"io"
)

// ObjectStorage is the boundary to the image store: put an object under a
// key and get back a public URL, or delete an object by key.
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
