package services

import (
	"context"
	"fmt"

	"github.com/newspulse/api/engagement/errors"
	"github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/engagement/repository"
	"github.com/newspulse/api/internal/identity"
)

// Service is the engagement engine: idempotent like toggling, at-most-once
// view recording and aggregate annotation. It holds no in-process state; the
// store's uniqueness constraints are the only concurrency guard.
type Service interface {
	// ToggleLike flips like state for the identity; returns true when liked
	// after the call. Guests may like.
	ToggleLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// RecordView records a view at most once per (news, identity) pair.
	RecordView(ctx context.Context, newsID int64, who identity.Identity) error

	// CountLikes and CountViews recompute from the store on every call.
	CountLikes(ctx context.Context, newsID int64) (int64, error)
	CountViews(ctx context.Context, newsID int64) (int64, error)

	// IsLiked reports like state for the identity.
	IsLiked(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// IsBookmarked reports bookmark state; always false for guests.
	IsBookmarked(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// Annotate returns per-identity engagement annotations for a page of news
	// ids using batch queries, never one query per item.
	Annotate(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]models.Annotation, error)
}

// newsProvider captures the subset of the news repository the engine needs.
type newsProvider interface {
	Exists(ctx context.Context, newsID int64) (bool, error)
}

// bookmarkProvider captures the subset of the bookmark repository the engine
// needs for annotation.
type bookmarkProvider interface {
	IsBookmarked(ctx context.Context, userID, newsID int64) (bool, error)
	BookmarkedMap(ctx context.Context, userID int64, newsIDs []int64) (map[int64]bool, error)
}

type service struct {
	repo      repository.Repository
	news      newsProvider
	bookmarks bookmarkProvider
}

// NewService constructs the engagement engine.
func NewService(repo repository.Repository, news newsProvider, bookmarks bookmarkProvider) Service {
	return &service{repo: repo, news: news, bookmarks: bookmarks}
}

func (s *service) requireNews(ctx context.Context, newsID int64) error {
	exists, err := s.news.Exists(ctx, newsID)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if !exists {
		return errors.ErrNewsNotFound
	}
	return nil
}

func (s *service) ToggleLike(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	if who.IsZero() {
		return false, errors.ErrUnauthorized
	}
	if err := s.requireNews(ctx, newsID); err != nil {
		return false, err
	}

	// Insert-first toggle: the unique index absorbs racing duplicates, so two
	// concurrent calls from the same identity net to one liked state.
	created, err := s.repo.AddLike(ctx, newsID, who)
	if err != nil {
		return false, fmt.Errorf("add like: %w", err)
	}
	if created {
		return true, nil
	}

	if _, err := s.repo.RemoveLike(ctx, newsID, who); err != nil {
		return false, fmt.Errorf("remove like: %w", err)
	}
	return false, nil
}

func (s *service) RecordView(ctx context.Context, newsID int64, who identity.Identity) error {
	if who.IsZero() {
		return errors.ErrUnauthorized
	}
	if err := s.requireNews(ctx, newsID); err != nil {
		return err
	}

	// Once viewed, always viewed; repeat calls are no-ops, not errors.
	if _, err := s.repo.EnsureView(ctx, newsID, who); err != nil {
		return fmt.Errorf("ensure view: %w", err)
	}
	return nil
}

func (s *service) CountLikes(ctx context.Context, newsID int64) (int64, error) {
	return s.repo.CountLikes(ctx, newsID)
}

func (s *service) CountViews(ctx context.Context, newsID int64) (int64, error) {
	return s.repo.CountViews(ctx, newsID)
}

func (s *service) IsLiked(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	if who.IsZero() {
		return false, nil
	}
	return s.repo.IsLiked(ctx, newsID, who)
}

func (s *service) IsBookmarked(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	// Bookmarks require a registered account; guests always read false.
	if !who.IsRegistered() {
		return false, nil
	}
	return s.bookmarks.IsBookmarked(ctx, who.UserID(), newsID)
}

func (s *service) Annotate(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]models.Annotation, error) {
	counts, err := s.repo.CountsForNews(ctx, newsIDs)
	if err != nil {
		return nil, fmt.Errorf("counts for news: %w", err)
	}

	liked, err := s.repo.LikedMap(ctx, newsIDs, who)
	if err != nil {
		return nil, fmt.Errorf("liked map: %w", err)
	}

	bookmarked := map[int64]bool{}
	if who.IsRegistered() {
		bookmarked, err = s.bookmarks.BookmarkedMap(ctx, who.UserID(), newsIDs)
		if err != nil {
			return nil, fmt.Errorf("bookmarked map: %w", err)
		}
	}

	result := make(map[int64]models.Annotation, len(newsIDs))
	for _, id := range newsIDs {
		c := counts[id]
		result[id] = models.Annotation{
			LikeCount:    c.Likes,
			ViewCount:    c.Views,
			IsLiked:      liked[id],
			IsBookmarked: bookmarked[id],
		}
	}
	return result, nil
}
