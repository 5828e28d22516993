package services

import (
	"context"
	"fmt"

	"github.com/newspulse/api/bookmarks/errors"
	"github.com/newspulse/api/bookmarks/models"
	"github.com/newspulse/api/bookmarks/repository"
	"github.com/newspulse/api/internal/identity"
	newsmodels "github.com/newspulse/api/news/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// Service manages a registered user's saved articles. Bookmarking is the one
// engagement action guests cannot take.
type Service interface {
	// Toggle flips bookmark state; returns true when bookmarked after the
	// call. Guests get ErrGuestForbidden, the zero identity ErrUnauthorized.
	Toggle(ctx context.Context, newsID int64, who identity.Identity) (bool, error)

	// List returns one page of the user's bookmarked articles, newest
	// bookmark first, annotated for the user.
	List(ctx context.Context, who identity.Identity, page, limit int) (*models.ListResponse, error)
}

// newsProvider captures the news operations the bookmark service needs:
// an existence check on toggle and annotated hydration on list.
type newsProvider interface {
	Exists(ctx context.Context, newsID int64) (bool, error)
	AnnotatedByIDs(ctx context.Context, ids []int64, who identity.Identity) ([]newsmodels.NewsResponse, error)
}

type service struct {
	repo repository.Repository
	news newsProvider
}

// NewService constructs the bookmark service.
func NewService(repo repository.Repository, news newsProvider) Service {
	return &service{repo: repo, news: news}
}

func (s *service) requireUser(who identity.Identity) (int64, error) {
	if who.IsZero() {
		return 0, errors.ErrUnauthorized
	}
	if !who.IsRegistered() {
		return 0, errors.ErrGuestForbidden
	}
	return who.UserID(), nil
}

func (s *service) Toggle(ctx context.Context, newsID int64, who identity.Identity) (bool, error) {
	userID, err := s.requireUser(who)
	if err != nil {
		return false, err
	}

	exists, err := s.news.Exists(ctx, newsID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if !exists {
		return false, errors.ErrNewsNotFound
	}

	// Insert-first toggle: the unique constraint absorbs racing duplicates.
	created, err := s.repo.Add(ctx, userID, newsID)
	if err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}
	if created {
		return true, nil
	}

	if _, err := s.repo.Remove(ctx, userID, newsID); err != nil {
		return false, fmt.Errorf("remove bookmark: %w", err)
	}
	return false, nil
}

func (s *service) List(ctx context.Context, who identity.Identity, page, limit int) (*models.ListResponse, error) {
	userID, err := s.requireUser(who)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	ids, err := s.repo.FindNewsIDsByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	items := []newsmodels.NewsResponse{}
	if len(ids) > 0 {
		items, err = s.news.AnnotatedByIDs(ctx, ids, who)
		if err != nil {
			return nil, fmt.Errorf("hydrate bookmarks: %w", err)
		}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.ListResponse{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1 && total > 0,
		News:        items,
	}, nil
}
