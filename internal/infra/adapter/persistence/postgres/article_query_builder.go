// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import "article-service/internal/infra/adapter/persistence/statement"

// NewArticleQueryBuilder returns the article statement mapper for PostgreSQL.
// It renders numbered placeholders ($1, $2, ...).
func NewArticleQueryBuilder() *statement.ArticleStatements {
	return statement.NewArticleStatements(statement.Dollar)
}
