package provider

import (
	"context"
	"io"
)

// BlobProvider abstracts the object store so the service does not care
// whether it talks to S3, R2 or anything else speaking the S3 API.
type BlobProvider interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error

	// Delete removes an object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
