package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	engmodels "github.com/newspulse/api/engagement/models"
	"github.com/newspulse/api/internal/identity"
	"github.com/newspulse/api/news/errors"
	"github.com/newspulse/api/news/models"
	"github.com/newspulse/api/news/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// Service exposes the annotated news query surface plus the admin CRUD used
// by the editorial panel.
type Service interface {
	// List returns one page of articles annotated for the caller. Sorting
	// follows query.Type: "trending" orders by views within the trending
	// window, "topmost" orders by likes, anything else is newest first.
	List(ctx context.Context, query models.ListQuery, who identity.Identity) (*models.ListResponse, error)

	// GetByID returns one annotated article and records a view for the
	// caller. The returned view count includes the caller's own first view.
	GetByID(ctx context.Context, id int64, who identity.Identity) (*models.NewsResponse, error)

	// AnnotatedByIDs hydrates the given articles in order, annotated for the
	// caller. Missing ids are skipped, not errors.
	AnnotatedByIDs(ctx context.Context, ids []int64, who identity.Identity) ([]models.NewsResponse, error)

	// Exists reports whether an article exists.
	Exists(ctx context.Context, id int64) (bool, error)

	Create(ctx context.Context, req *models.CreateNewsRequest) (*models.NewsResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateNewsRequest) (*models.NewsResponse, error)
	Delete(ctx context.Context, id int64) error

	// CountAll reports the total number of articles, for dashboards.
	CountAll(ctx context.Context) (int64, error)
}

// engagementEngine captures the subset of the engagement service the query
// surface needs.
type engagementEngine interface {
	RecordView(ctx context.Context, newsID int64, who identity.Identity) error
	Annotate(ctx context.Context, newsIDs []int64, who identity.Identity) (map[int64]engmodels.Annotation, error)
}

// categoryProvider captures the category existence check used on writes.
type categoryProvider interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo       repository.NewsRepository
	engagement engagementEngine
	categories categoryProvider
}

// NewService constructs the news service.
func NewService(repo repository.NewsRepository, engagement engagementEngine, categories categoryProvider) Service {
	return &service{repo: repo, engagement: engagement, categories: categories}
}

func normalizePage(query models.ListQuery) (page, limit int) {
	page = query.Page
	if page < 1 {
		page = 1
	}
	limit = query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func buildFilter(query models.ListQuery) (repository.NewsFilter, string) {
	var filter repository.NewsFilter
	if query.CategoryID > 0 {
		id := query.CategoryID
		filter.CategoryID = &id
	}
	if query.Search != "" {
		s := query.Search
		filter.SearchText = &s
	}

	sort := models.SortRecent
	switch query.Type {
	case models.SortTrending:
		sort = models.SortTrending
		after := time.Now().Add(-models.TrendingWindow)
		filter.CreatedAfter = &after
	case models.SortTopmost:
		sort = models.SortTopmost
	}
	return filter, sort
}

func (s *service) List(ctx context.Context, query models.ListQuery, who identity.Identity) (*models.ListResponse, error) {
	page, limit := normalizePage(query)
	filter, sort := buildFilter(query)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	offset := (page - 1) * limit
	items, err := s.repo.Find(ctx, filter, sort, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	annotated, err := s.annotate(ctx, items, who)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	resp := &models.ListResponse{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1 && total > 0,
		News:        annotated,
	}
	if resp.HasNext {
		next := page + 1
		resp.NextPage = &next
	}
	if resp.HasPrev {
		prev := page - 1
		if prev > totalPages {
			prev = totalPages
		}
		resp.PrevPage = &prev
	}
	return resp, nil
}

// annotate attaches per-caller engagement state to a page of rows using one
// batch lookup, not one query per article.
func (s *service) annotate(ctx context.Context, items []*models.News, who identity.Identity) ([]models.NewsResponse, error) {
	result := make([]models.NewsResponse, 0, len(items))
	if len(items) == 0 {
		return result, nil
	}

	ids := make([]int64, len(items))
	for i, n := range items {
		ids[i] = n.ID
	}

	annotations, err := s.engagement.Annotate(ctx, ids, who)
	if err != nil {
		return nil, fmt.Errorf("annotate news: %w", err)
	}

	for _, n := range items {
		resp := n.ToResponse()
		a := annotations[n.ID]
		resp.LikesCount = a.LikeCount
		resp.ViewsCount = a.ViewCount
		resp.IsLiked = a.IsLiked
		resp.IsBookmarked = a.IsBookmarked
		result = append(result, resp)
	}
	return result, nil
}

func (s *service) GetByID(ctx context.Context, id int64, who identity.Identity) (*models.NewsResponse, error) {
	if who.IsZero() {
		return nil, errors.ErrUnauthorized
	}

	news, err := s.findNews(ctx, id)
	if err != nil {
		return nil, err
	}

	// Record before annotating so the caller's first view shows in the count.
	if err := s.engagement.RecordView(ctx, id, who); err != nil {
		return nil, fmt.Errorf("record view: %w", err)
	}

	annotated, err := s.annotate(ctx, []*models.News{news}, who)
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}

func (s *service) AnnotatedByIDs(ctx context.Context, ids []int64, who identity.Identity) ([]models.NewsResponse, error) {
	items, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return s.annotate(ctx, items, who)
}

// validateMedium enforces that an article carries exactly one medium.
func validateMedium(imageURL, videoURL *string) error {
	hasImage := imageURL != nil && *imageURL != ""
	hasVideo := videoURL != nil && *videoURL != ""
	if hasImage == hasVideo {
		return errors.ErrInvalidMedium
	}
	return nil
}

func (s *service) requireCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	exists, err := s.categories.Exists(ctx, *categoryID)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if !exists {
		return errors.ErrCategoryNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, req *models.CreateNewsRequest) (*models.NewsResponse, error) {
	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", errors.ErrInvalidRequest)
	}
	if err := validateMedium(req.ImageURL, req.VideoURL); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	news := &models.News{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	resp := news.ToResponse()
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id int64, req *models.UpdateNewsRequest) (*models.NewsResponse, error) {
	news, err := s.findNews(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Description != nil {
		news.Description = *req.Description
	}
	if req.ImageURL != nil {
		news.ImageURL = req.ImageURL
		news.VideoURL = nil
	}
	if req.VideoURL != nil {
		news.VideoURL = req.VideoURL
		news.ImageURL = nil
	}
	if req.CategoryID != nil {
		news.CategoryID = req.CategoryID
	}

	if err := validateMedium(news.ImageURL, news.VideoURL); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if err := s.requireCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, news); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}

	resp := news.ToResponse()
	return &resp, nil
}

func (s *service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	if !exists {
		return errors.ErrNewsNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return nil
}

// findNews keeps a missing row distinct from a store failure so outages do
// not surface as 404s.
func (s *service) findNews(ctx context.Context, id int64) (*models.News, error) {
	news, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("%w: %v", errors.ErrDatabaseOperation, err)
	}
	return news, nil
}

func (s *service) CountAll(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, repository.NewsFilter{})
}
