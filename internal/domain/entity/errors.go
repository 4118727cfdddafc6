package entity

import "errors"

// ErrNotFound indicates that a requested entity was not found in the store.
var ErrNotFound = errors.New("entity not found")
