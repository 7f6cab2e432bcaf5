package errors

import "errors"

var (
	// Cache errors
	ErrInvalidCapacity = errors.New("cache capacity must be at least 1")
	ErrKeyNotFound     = errors.New("key not found")

	// Container errors
	ErrEmptyContainer = errors.New("container is empty")
)
