package statement

import (
	"strings"

	"article-service/internal/domain/entity"
)

const articlesTable = "articles"

// articleColumns lists the persisted article attributes in bind order.
var articleColumns = []string{"title", "content", "published_date"}

// ArticleStatements maps articles and their int64 identifiers to SQL.
type ArticleStatements struct {
	placeholder Placeholder
}

var _ Mapper[entity.Article, int64] = (*ArticleStatements)(nil)

// NewArticleStatements returns a mapper rendering markers with placeholder.
func NewArticleStatements(placeholder Placeholder) *ArticleStatements {
	return &ArticleStatements{placeholder: placeholder}
}

// Insert builds INSERT INTO articles (title, content, published_date) VALUES ...
// with every field bound. Passing no records yields a statement without a
// VALUES clause, which the store rejects.
func (s *ArticleStatements) Insert(articles ...entity.Article) Statement {
	b := NewBuilder("INSERT INTO "+articlesTable+" ("+strings.Join(articleColumns, ", ")+")", s.placeholder)
	return PushValues(b, articles, func(row *Tuple, a entity.Article) {
		row.Bind(a.Title).Bind(a.Content).Bind(a.PublishedDate)
	}).Build()
}

// Select builds the lookup by identifier. The key is bound, not formatted
// into the SQL text.
func (s *ArticleStatements) Select(id int64) Statement {
	return NewBuilder("SELECT "+strings.Join(articleColumns, ", ")+" FROM "+articlesTable+" WHERE id = ", s.placeholder).
		Bind(id).
		Build()
}
