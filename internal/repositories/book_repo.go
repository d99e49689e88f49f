package repositories

import (
	"context"

	"bookstore/internal/models"
)

// BookFilterKind selects which of the mutually exclusive listing modes a
// BookFilter runs.
type BookFilterKind int

const (
	FilterAll BookFilterKind = iota
	FilterPriceRange
	FilterTitle
	FilterAuthor
)

func (k BookFilterKind) String() string {
	switch k {
	case FilterPriceRange:
		return "price_range"
	case FilterTitle:
		return "title"
	case FilterAuthor:
		return "author"
	default:
		return "all"
	}
}

// SortOrder is the direction books are sorted by price.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// BookFilter is a resolved listing query. Only the fields relevant to Kind
// are read: MinPrice/MaxPrice for FilterPriceRange, Term for FilterTitle and
// FilterAuthor.
type BookFilter struct {
	Kind     BookFilterKind
	MinPrice float64
	MaxPrice float64
	Term     string
	Order    SortOrder
}

// BookRepository defines the interface for book data access.
type BookRepository interface {
	Find(ctx context.Context, filter BookFilter) ([]models.Book, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	CreateBatch(ctx context.Context, books []models.Book) (int64, error)
	// Update writes only the given columns and returns the stored record.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}
