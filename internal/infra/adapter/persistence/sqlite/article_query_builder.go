// Package sqlite provides SQLite implementations of repository interfaces.
package sqlite

import "article-service/internal/infra/adapter/persistence/statement"

// NewArticleQueryBuilder returns the article statement mapper for SQLite.
// It renders positional ? placeholders.
func NewArticleQueryBuilder() *statement.ArticleStatements {
	return statement.NewArticleStatements(statement.Question)
}
