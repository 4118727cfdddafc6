package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"article-service/internal/domain/entity"
	"article-service/internal/infra/adapter/persistence/statement"
	"article-service/internal/observability/metrics"
	"article-service/internal/observability/tracing"
	"article-service/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder statement.Mapper[entity.Article, int64]
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	ctx, span := tracing.GetTracer().Start(ctx, "postgres.ArticleRepo.Create")
	defer span.End()

	stmt := repo.queryBuilder.Insert(*article)
	start := time.Now()
	_, err := repo.db.ExecContext(ctx, stmt.SQL, stmt.Args...)
	metrics.RecordDBQuery("article_insert", time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "postgres.ArticleRepo.Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("article.id", id))

	stmt := repo.queryBuilder.Select(id)
	var article entity.Article
	start := time.Now()
	err := repo.db.QueryRowContext(ctx, stmt.SQL, stmt.Args...).
		Scan(&article.Title, &article.Content, &article.PublishedDate)
	metrics.RecordDBQuery("article_select", time.Since(start))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Get: %w", entity.ErrNotFound)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, fmt.Errorf("Get: %w", err)
	}
	article.ID = id
	return &article, nil
}
