// Package article provides use cases for storing and looking up articles.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that no article has the requested identifier.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be non-negative integers.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
