package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound reports that the requested key has no object in the
// store. Callers use errors.Is to distinguish absence from
// infrastructure failures.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// ObjectStore is the contract for durable binary storage keyed by an
// opaque string. The MinIO adapter is the only production
// implementation.
type ObjectStore interface {
	// Put writes an object under key with the given content type.
	Put(ctx context.Context, key string, data io.Reader, size int64, contentType string) error

	// Get returns the object bytes and content type, or
	// ErrObjectNotFound.
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)

	// Stat returns object metadata without reading the body, or
	// ErrObjectNotFound.
	Stat(ctx context.Context, key string) (ObjectInfo, error)

	// Delete removes the object under key. Deleting an absent key is
	// not an error at this layer.
	Delete(ctx context.Context, key string) error

	// List returns all objects whose key begins with prefix, in the
	// store's native listing order.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// PresignedGetURL generates a time-limited download URL for key.
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Config holds object store connection configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}
