// Package article provides HTTP handlers for creating and fetching articles.
package article

import "article-service/internal/domain/entity"

// DTO represents the JSON structure for article data transfer.
// The store-assigned identifier is not part of the body.
type DTO struct {
	Title         string `json:"title" example:"Launch"`
	Content       string `json:"content" example:"We shipped."`
	PublishedDate string `json:"published_date" example:"2024-01-01"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		Title:         a.Title,
		Content:       a.Content,
		PublishedDate: a.PublishedDate,
	}
}

// createRequest mirrors DTO with pointer fields so that an absent key
// can be told apart from an empty string.
type createRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	PublishedDate *string `json:"published_date"`
}

// missingField returns the JSON name of the first absent field, or "".
func (r createRequest) missingField() string {
	switch {
	case r.Title == nil:
		return "title"
	case r.Content == nil:
		return "content"
	case r.PublishedDate == nil:
		return "published_date"
	}
	return ""
}
