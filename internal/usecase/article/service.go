package article

import (
	"context"
	"errors"
	"fmt"

	"article-service/internal/domain/entity"
	"article-service/internal/observability/metrics"
	"article-service/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// Fields are passed to the store as given; NOT NULL and other constraints
// are enforced by the schema.
type CreateInput struct {
	Title         string
	Content       string
	PublishedDate string
}

// Service provides article use cases and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Create persists a new article. The store assigns its identifier.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	err := s.Repo.Create(ctx, &entity.Article{
		Title:         in.Title,
		Content:       in.Content,
		PublishedDate: in.PublishedDate,
	})
	metrics.RecordArticleCreated(err == nil)
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is negative and ErrArticleNotFound
// if no row matches. Any other store failure is returned wrapped and is
// never reported as ErrArticleNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id < 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		metrics.RecordArticleLookup(metrics.LookupNotFound)
		return nil, ErrArticleNotFound
	case err != nil:
		metrics.RecordArticleLookup(metrics.LookupError)
		return nil, fmt.Errorf("get article: %w", err)
	}
	metrics.RecordArticleLookup(metrics.LookupFound)
	return article, nil
}
