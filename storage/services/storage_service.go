package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	uuid "github.com/gofrs/uuid"

	"github.com/newspulse/api/storage/errors"
	"github.com/newspulse/api/storage/models"
	"github.com/newspulse/api/storage/provider"
)

// maxUploadBytes caps a single media upload at 50MB. Anything bigger should
// be compressed before it reaches the panel.
const maxUploadBytes = 50 * 1024 * 1024

// allowedContentTypes are the media types news articles, banners and avatars
// can carry.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// Service stores uploaded media and hands back public URLs.
type Service interface {
	// Upload stores one object and returns its key and public URL.
	Upload(ctx context.Context, name, contentType string, size int64, body io.Reader) (*models.UploadResponse, error)

	// Delete removes a previously uploaded object by key.
	Delete(ctx context.Context, key string) error
}

type service struct {
	blobs         provider.BlobProvider
	publicBaseURL string
}

// NewService constructs the storage service. publicBaseURL is the CDN or
// bucket base the returned URLs are built from.
func NewService(blobs provider.BlobProvider, publicBaseURL string) Service {
	return &service{blobs: blobs, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *service) Upload(ctx context.Context, name, contentType string, size int64, body io.Reader) (*models.UploadResponse, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: file is empty", errors.ErrInvalidRequest)
	}
	if size > maxUploadBytes {
		return nil, fmt.Errorf("%w: max %d MB", errors.ErrFileTooLarge, maxUploadBytes/(1024*1024))
	}

	ext, ok := allowedContentTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, contentType)
	}

	// The stored key is a fresh uuid; the client's file name never reaches
	// the bucket.
	key := "uploads/" + uuid.Must(uuid.NewV4()).String() + ext
	if err := s.blobs.Put(ctx, key, contentType, size, body); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorageOperation, err)
	}

	return &models.UploadResponse{
		Key:         key,
		URL:         s.publicBaseURL + "/" + key,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	if key == "" || strings.Contains(key, "..") || !strings.HasPrefix(key, "uploads/") {
		return fmt.Errorf("%w: bad object key", errors.ErrInvalidRequest)
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorageOperation, err)
	}
	return nil
}
