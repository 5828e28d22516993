package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	engmodels "github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/internal/identity"
)

// mockEngagement is a test double for the engagement engine.
type mockEngagement struct {
	mock.Mock
}

func (m *mockEngagement) ToggleLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	args := m.Called(ctx, newsID, who)
	return args.Bool(0), args.Error(1)
}

func (m *mockEngagement) RecordView(ctx context.Context, newsID int64, who identity.Identity) error {
	args := m.Called(ctx, newsID, who)
	return args.Error(0)
}

func (m *mockEngagement) CountLikes(ctx context.Context, newsID int64) (int64, error) {
	args := m.Called(ctx, newsID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEngagement) CountViews(ctx context.Context, newsID int64) (int64, error) {
	args := m.Called(ctx, newsID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEngagement) IsLiked(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	args := m.Called(ctx, newsID, who)
	return args.Bool(0), args.Error(1)
}

func (m *mockEngagement) IsBookmarked(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	args := m.Called(ctx, newsID, who)
	return args.Bool(0), args.Error(1)
}

func (m *mockEngagement) Annotate(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]engmodels.Annotation, error) {
	args := m.Called(ctx, newsIDs, who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]engmodels.Annotation), args.Error(1)
}

func TestToggleLikeResponse(t *testing.T) {
	t.Run("responds with a liked flag", func(t *testing.T) {
		eng := new(mockEngagement)
		eng.On("ToggleLike", mock.Anything, int64(5), mock.Anything).Return(true, nil).Once()

		app := fiber.New()
		handler := NewNewsHandler(nil, eng)
		app.Post("/api/app/news/toggle-like", handler.ToggleLike)

		req := httptest.NewRequest("POST", "/api/app/news/toggle-like", strings.NewReader(`{"newsId":5}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var envelope struct {
			Success bool            `json:"success"`
			Data    map[string]bool `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &envelope))
		require.True(t, envelope.Success)
		liked, ok := envelope.Data["liked"]
		require.True(t, ok)
		require.True(t, liked)
		eng.AssertExpectations(t)
	})

	t.Run("reports unliked after toggling off", func(t *testing.T) {
		eng := new(mockEngagement)
		eng.On("ToggleLike", mock.Anything, int64(5), mock.Anything).Return(false, nil).Once()

		app := fiber.New()
		handler := NewNewsHandler(nil, eng)
		app.Post("/api/app/news/toggle-like", handler.ToggleLike)

		req := httptest.NewRequest("POST", "/api/app/news/toggle-like", strings.NewReader(`{"newsId":5}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var envelope struct {
			Data map[string]bool `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &envelope))
		liked, ok := envelope.Data["liked"]
		require.True(t, ok)
		require.False(t, liked)
	})

	t.Run("rejects a missing news id", func(t *testing.T) {
		eng := new(mockEngagement)

		app := fiber.New()
		handler := NewNewsHandler(nil, eng)
		app.Post("/api/app/news/toggle-like", handler.ToggleLike)

		req := httptest.NewRequest("POST", "/api/app/news/toggle-like", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 400, resp.StatusCode)
		eng.AssertNotCalled(t, "ToggleLike")
	})
}
