// Package repository declares the persistence ports used by the use case layer.
package repository

import (
	"context"

	"article-service/internal/domain/entity"
)

// ArticleRepository persists and loads articles.
type ArticleRepository interface {
	// Create inserts the article. The identifier assigned by the store is not
	// reported back; the row count of the insert is discarded.
	Create(ctx context.Context, article *entity.Article) error
	// Get loads the article with the given identifier.
	// Returns an error wrapping entity.ErrNotFound when no row matches.
	Get(ctx context.Context, id int64) (*entity.Article, error)
}
