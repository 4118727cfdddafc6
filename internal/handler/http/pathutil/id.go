// Package pathutil parses and normalizes URL paths.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path segment as a non-negative base-10 int64 identifier.
// Signs, whitespace and values outside the int64 range are rejected.
//
// Example:
//
//	id, err := ParseID(r.PathValue("id"))
//	// "123" -> 123, nil
//	// "-1"  -> 0, ErrInvalidID
func ParseID(segment string) (int64, error) {
	if segment == "" || segment[0] == '+' || segment[0] == '-' {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
