package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// CreateBookInput is the body of a book creation request. Zero price or
// stock count as not provided.
type CreateBookInput struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Summary     string  `json:"summary" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Stock       int     `json:"stock" validate:"required,gte=0"`
	CategoryIDs []uint  `json:"categoryIds"`
	TagIDs      []uint  `json:"tagIds"`
	FormatIDs   []uint  `json:"formatIds"`
}

// UpdateBookInput carries the columns to overwrite. Nil fields are left
// untouched; non-nil fields are written even when zero, except that the
// text fields may not be blank.
type UpdateBookInput struct {
	Title   *string  `json:"title"`
	Author  *string  `json:"author"`
	Summary *string  `json:"summary"`
	Price   *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock   *int     `json:"stock" validate:"omitempty,gte=0"`
}

func (in UpdateBookInput) columns() map[string]interface{} {
	fields := make(map[string]interface{})
	if in.Title != nil {
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Author != nil {
		fields["author"] = strings.TrimSpace(*in.Author)
	}
	if in.Summary != nil {
		fields["summary"] = strings.TrimSpace(*in.Summary)
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Stock != nil {
		fields["stock"] = *in.Stock
	}
	return fields
}

// blankText rejects a title, author or summary sent as an empty string.
func (in UpdateBookInput) blankText() error {
	texts := []struct {
		name  string
		value *string
	}{
		{"Title", in.Title},
		{"Author", in.Author},
		{"Summary", in.Summary},
	}
	for _, text := range texts {
		if text.value != nil && strings.TrimSpace(*text.value) == "" {
			return &ValidationError{Msg: text.name + " not provided"}
		}
	}
	return nil
}

// BookService handles business logic related to books.
type BookService struct {
	repo    repositories.BookRepository
	catalog repositories.CatalogRepository
	events  Publisher
}

// NewBookService creates a new BookService. events may be nil.
func NewBookService(repo repositories.BookRepository, catalog repositories.CatalogRepository, events Publisher) *BookService {
	return &BookService{
		repo:    repo,
		catalog: catalog,
		events:  events,
	}
}

// ListBooks returns the books matching params. An empty result is reported
// as a NotFoundError.
func (s *BookService) ListBooks(ctx context.Context, params BookQueryParams) ([]models.Book, error) {
	filter := ResolveBookFilter(params)
	books, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		if filter.Kind == repositories.FilterAll {
			return nil, ErrNoBooks
		}
		return nil, ErrNoBooksFound
	}
	return books, nil
}

// GetBook retrieves a single book by its ID.
func (s *BookService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// CreateBook validates in and stores a new book.
func (s *BookService) CreateBook(ctx context.Context, in CreateBookInput) (*models.Book, error) {
	book, err := s.buildBook(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.events, EventBookCreated, book)
	return book, nil
}

// CreateBooksBulk validates every entry and stores them in one batch. It
// returns an empty slice when the store reports no rows written.
func (s *BookService) CreateBooksBulk(ctx context.Context, in []CreateBookInput) ([]models.Book, error) {
	if len(in) == 0 {
		return nil, ErrBooksRequired
	}
	books := make([]models.Book, 0, len(in))
	for i, entry := range in {
		book, err := s.buildBook(ctx, entry)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return nil, &ValidationError{Msg: fmt.Sprintf("books[%d]: %s", i, ve.Msg)}
			}
			return nil, err
		}
		books = append(books, *book)
	}

	created, err := s.repo.CreateBatch(ctx, books)
	if err != nil {
		return nil, err
	}
	if created == 0 {
		return []models.Book{}, nil
	}
	publishEvent(ctx, s.events, EventBooksBulkCreated, books)
	return books, nil
}

// UpdateBook overwrites the provided columns of an existing book.
func (s *BookService) UpdateBook(ctx context.Context, id string, in UpdateBookInput) (*models.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	fields := in.columns()
	if len(fields) == 0 {
		return nil, ErrBookDataRequired
	}
	if err := in.blankText(); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	if _, err := s.GetBook(ctx, id); err != nil {
		return nil, err
	}
	book, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		// The book may have been deleted between the lookup and the write.
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	publishEvent(ctx, s.events, EventBookUpdated, book)
	return book, nil
}

// DeleteBook removes a book and returns its state prior to deletion.
func (s *BookService) DeleteBook(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, book.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	publishEvent(ctx, s.events, EventBookDeleted, book)
	return book, nil
}

func (s *BookService) buildBook(ctx context.Context, in CreateBookInput) (*models.Book, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Summary = strings.TrimSpace(in.Summary)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:   in.Title,
		Author:  in.Author,
		Summary: in.Summary,
		Price:   in.Price,
		Stock:   in.Stock,
	}

	var err error
	if book.Categories, err = s.resolveCategories(ctx, in.CategoryIDs); err != nil {
		return nil, err
	}
	if book.Tags, err = s.resolveTags(ctx, in.TagIDs); err != nil {
		return nil, err
	}
	if book.Formats, err = s.resolveFormats(ctx, in.FormatIDs); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) resolveCategories(ctx context.Context, ids []uint) ([]models.Category, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.catalog.CategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, &ValidationError{Msg: "Unknown category ID"}
	}
	return found, nil
}

func (s *BookService) resolveTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.catalog.TagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, &ValidationError{Msg: "Unknown tag ID"}
	}
	return found, nil
}

func (s *BookService) resolveFormats(ctx context.Context, ids []uint) ([]models.Format, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.catalog.FormatsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, &ValidationError{Msg: "Unknown format ID"}
	}
	return found, nil
}

func uniqueIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
