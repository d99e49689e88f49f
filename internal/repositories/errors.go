package repositories

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("record already exists")
	// ErrInsufficientStock is returned when an order asks for more copies
	// than a book has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
