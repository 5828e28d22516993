package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/api/storage/errors"
)

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the object under a fresh key and builds the public URL", func(t *testing.T) {
		body := strings.NewReader("fake jpeg bytes")
		mockBlobs := new(MockBlobProvider)
		mockBlobs.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", int64(15), body).Return(nil).Once()

		svc := NewService(mockBlobs, "https://cdn.example.com/")
		resp, err := svc.Upload(ctx, "cover.jpeg", "image/jpeg", 15, body)

		require.NoError(t, err)
		require.Equal(t, "https://cdn.example.com/"+resp.Key, resp.URL)
		require.Equal(t, "image/jpeg", resp.ContentType)
		require.Equal(t, int64(15), resp.Size)
		mockBlobs.AssertExpectations(t)
	})

	t.Run("rejects a content type outside the allowlist", func(t *testing.T) {
		mockBlobs := new(MockBlobProvider)

		svc := NewService(mockBlobs, "https://cdn.example.com")
		_, err := svc.Upload(ctx, "payload.exe", "application/octet-stream", 10, strings.NewReader("xx"))

		require.ErrorIs(t, err, errors.ErrUnsupportedMedia)
		mockBlobs.AssertNotCalled(t, "Put")
	})

	t.Run("rejects an oversized file", func(t *testing.T) {
		mockBlobs := new(MockBlobProvider)

		svc := NewService(mockBlobs, "https://cdn.example.com")
		_, err := svc.Upload(ctx, "huge.mp4", "video/mp4", 51*1024*1024, strings.NewReader("xx"))

		require.ErrorIs(t, err, errors.ErrFileTooLarge)
		mockBlobs.AssertNotCalled(t, "Put")
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		mockBlobs := new(MockBlobProvider)

		svc := NewService(mockBlobs, "https://cdn.example.com")
		_, err := svc.Upload(ctx, "empty.png", "image/png", 0, strings.NewReader(""))

		require.ErrorIs(t, err, errors.ErrInvalidRequest)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a stored object", func(t *testing.T) {
		mockBlobs := new(MockBlobProvider)
		mockBlobs.On("Delete", ctx, "uploads/abc.jpg").Return(nil).Once()

		svc := NewService(mockBlobs, "https://cdn.example.com")
		require.NoError(t, svc.Delete(ctx, "uploads/abc.jpg"))
		mockBlobs.AssertExpectations(t)
	})

	t.Run("rejects keys outside the uploads prefix", func(t *testing.T) {
		mockBlobs := new(MockBlobProvider)

		svc := NewService(mockBlobs, "https://cdn.example.com")
		err := svc.Delete(ctx, "uploads/../secrets")

		require.ErrorIs(t, err, errors.ErrInvalidRequest)
		mockBlobs.AssertNotCalled(t, "Delete")
	})
}
