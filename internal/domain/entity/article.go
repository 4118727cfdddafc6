// Package entity defines the core domain entities of the article service.
package entity

// Article is a short text record persisted in the articles table.
// ID is assigned by the store on insertion and is zero for articles that
// have not been persisted yet. PublishedDate is an opaque date-formatted
// string; it is stored as given and never parsed.
type Article struct {
	ID            int64
	Title         string
	Content       string
	PublishedDate string
}
