package services_test

import (
	"context"
	"fmt"
	"testing"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookService() (*services.BookService, *MockBookRepository, *MockCatalogRepository) {
	repo := new(MockBookRepository)
	catalog := new(MockCatalogRepository)
	return services.NewBookService(repo, catalog, nil), repo, catalog
}

func validBookInput() services.CreateBookInput {
	return services.CreateBookInput{
		Title:   "The Hobbit",
		Author:  "J. R. R. Tolkien",
		Summary: "There and back again",
		Price:   12.5,
		Stock:   4,
	}
}

func TestBookService_ListBooks(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()

	expected := []models.Book{{ID: "1", Title: "The Hobbit", Price: 12.5}}
	repo.On("Find", ctx, repositories.BookFilter{Kind: repositories.FilterTitle, Term: "hobbit"}).Return(expected, nil).Once()

	books, err := service.ListBooks(ctx, services.BookQueryParams{Title: "hobbit"})
	require.NoError(t, err)
	assert.Equal(t, expected, books)
	repo.AssertExpectations(t)
}

func TestBookService_ListBooks_Empty(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()

	// Filtered query with no match
	repo.On("Find", ctx, repositories.BookFilter{Kind: repositories.FilterAuthor, Term: "nobody"}).Return([]models.Book{}, nil).Once()
	_, err := service.ListBooks(ctx, services.BookQueryParams{Author: "nobody"})
	assert.ErrorIs(t, err, services.ErrNoBooksFound)

	// Empty store
	repo.On("Find", ctx, repositories.BookFilter{Kind: repositories.FilterAll}).Return([]models.Book{}, nil).Once()
	_, err = service.ListBooks(ctx, services.BookQueryParams{})
	assert.ErrorIs(t, err, services.ErrNoBooks)
	repo.AssertExpectations(t)
}

func TestBookService_ListBooks_StoreError(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()

	repo.On("Find", ctx, mock.Anything).Return(nil, fmt.Errorf("connection refused")).Once()
	_, err := service.ListBooks(ctx, services.BookQueryParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBookService_GetBook(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()

	_, err := service.GetBook(ctx, "  ")
	assert.ErrorIs(t, err, services.ErrIDRequired)

	repo.On("GetByID", ctx, "missing").Return(nil, fmt.Errorf("book with ID missing: %w", repositories.ErrNotFound)).Once()
	_, err = service.GetBook(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrBookNotFound)

	expected := &models.Book{ID: "1", Title: "Dune"}
	repo.On("GetByID", ctx, "1").Return(expected, nil).Once()
	book, err := service.GetBook(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, expected, book)
	repo.AssertExpectations(t)
}

func TestBookService_CreateBook_MissingFields(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*services.CreateBookInput)
		message string
	}{
		{"title", func(in *services.CreateBookInput) { in.Title = "" }, "Title not provided"},
		{"blank title", func(in *services.CreateBookInput) { in.Title = "   " }, "Title not provided"},
		{"author", func(in *services.CreateBookInput) { in.Author = "" }, "Author not provided"},
		{"summary", func(in *services.CreateBookInput) { in.Summary = "" }, "Summary not provided"},
		{"price", func(in *services.CreateBookInput) { in.Price = 0 }, "Price not provided"},
		{"stock", func(in *services.CreateBookInput) { in.Stock = 0 }, "Stock not provided"},
		{"first missing field wins", func(in *services.CreateBookInput) { in.Summary = ""; in.Stock = 0 }, "Summary not provided"},
		{"negative price", func(in *services.CreateBookInput) { in.Price = -3 }, "Price must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := newBookService()
			in := validBookInput()
			tt.mutate(&in)

			_, err := service.CreateBook(ctx, in)
			var ve *services.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.message, ve.Msg)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestBookService_CreateBook(t *testing.T) {
	ctx := context.Background()
	service, repo, catalog := newBookService()

	in := validBookInput()
	in.CategoryIDs = []uint{1, 1}
	catalog.On("CategoriesByIDs", ctx, []uint{1}).Return([]models.Category{{ID: 1, Name: "Fantasy"}}, nil).Once()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Book")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Book).ID = "generated"
	}).Return(nil).Once()

	book, err := service.CreateBook(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "generated", book.ID)
	assert.Equal(t, in.Title, book.Title)
	assert.Equal(t, in.Author, book.Author)
	assert.Equal(t, in.Summary, book.Summary)
	assert.Equal(t, in.Price, book.Price)
	assert.Equal(t, in.Stock, book.Stock)
	require.Len(t, book.Categories, 1)
	assert.Equal(t, "Fantasy", book.Categories[0].Name)
	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestBookService_CreateBook_UnknownTag(t *testing.T) {
	ctx := context.Background()
	service, repo, catalog := newBookService()

	in := validBookInput()
	in.TagIDs = []uint{7, 8}
	catalog.On("TagsByIDs", ctx, []uint{7, 8}).Return([]models.Tag{{ID: 7, Name: "classic"}}, nil).Once()

	_, err := service.CreateBook(ctx, in)
	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Unknown tag ID", ve.Msg)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookService_CreateBook_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBookRepository)
	publisher := new(MockPublisher)
	service := services.NewBookService(repo, new(MockCatalogRepository), publisher)

	repo.On("Create", ctx, mock.AnythingOfType("*models.Book")).Return(nil).Once()
	publisher.On("Publish", ctx, services.EventBookCreated, mock.Anything).Return(fmt.Errorf("broker down")).Once()

	// A failed publication does not fail the request.
	_, err := service.CreateBook(ctx, validBookInput())
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestBookService_CreateBooksBulk(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()

	_, err := service.CreateBooksBulk(ctx, nil)
	assert.ErrorIs(t, err, services.ErrBooksRequired)

	second := validBookInput()
	second.Author = ""
	_, err = service.CreateBooksBulk(ctx, []services.CreateBookInput{validBookInput(), second})
	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "books[1]: Author not provided", ve.Msg)

	repo.On("CreateBatch", ctx, mock.AnythingOfType("[]models.Book")).Return(int64(2), nil).Once()
	books, err := service.CreateBooksBulk(ctx, []services.CreateBookInput{validBookInput(), validBookInput()})
	require.NoError(t, err)
	assert.Len(t, books, 2)

	repo.On("CreateBatch", ctx, mock.AnythingOfType("[]models.Book")).Return(int64(0), nil).Once()
	books, err = service.CreateBooksBulk(ctx, []services.CreateBookInput{validBookInput()})
	require.NoError(t, err)
	assert.Empty(t, books)
	repo.AssertExpectations(t)
}

func TestBookService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()
	price := 15.0

	_, err := service.UpdateBook(ctx, "", services.UpdateBookInput{Price: &price})
	assert.ErrorIs(t, err, services.ErrIDRequired)

	_, err = service.UpdateBook(ctx, "1", services.UpdateBookInput{})
	assert.ErrorIs(t, err, services.ErrBookDataRequired)

	negative := -1
	_, err = service.UpdateBook(ctx, "1", services.UpdateBookInput{Stock: &negative})
	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)

	repo.On("GetByID", ctx, "99").Return(nil, repositories.ErrNotFound).Once()
	_, err = service.UpdateBook(ctx, "99", services.UpdateBookInput{Price: &price})
	assert.ErrorIs(t, err, services.ErrBookNotFound)

	existing := &models.Book{ID: "1", Title: "Dune", Price: 10}
	updated := &models.Book{ID: "1", Title: "Dune", Price: 15}
	repo.On("GetByID", ctx, "1").Return(existing, nil).Once()
	repo.On("Update", ctx, "1", map[string]interface{}{"price": 15.0}).Return(updated, nil).Once()

	book, err := service.UpdateBook(ctx, "1", services.UpdateBookInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 15.0, book.Price)
	assert.Equal(t, "Dune", book.Title)
	repo.AssertExpectations(t)
}

func TestBookService_UpdateBook_ZeroValuesAreWritten(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()
	zero := 0

	repo.On("GetByID", ctx, "1").Return(&models.Book{ID: "1", Stock: 3}, nil).Once()
	repo.On("Update", ctx, "1", map[string]interface{}{"stock": 0}).Return(&models.Book{ID: "1"}, nil).Once()

	book, err := service.UpdateBook(ctx, "1", services.UpdateBookInput{Stock: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, book.Stock)
	repo.AssertExpectations(t)
}

func TestBookService_UpdateBook_RejectsBlankText(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()
	empty, spaces := "", "   "

	tests := []struct {
		name    string
		input   services.UpdateBookInput
		wantMsg string
	}{
		{"empty title", services.UpdateBookInput{Title: &empty}, "Title not provided"},
		{"blank author", services.UpdateBookInput{Author: &spaces}, "Author not provided"},
		{"empty summary", services.UpdateBookInput{Summary: &empty}, "Summary not provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpdateBook(ctx, "1", tt.input)
			var ve *services.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantMsg, ve.Msg)
		})
	}

	// Nothing reaches the store.
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookService_UpdateBook_TrimsText(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()
	title := "  Dune Messiah "

	repo.On("GetByID", ctx, "1").Return(&models.Book{ID: "1", Title: "Dune"}, nil).Once()
	repo.On("Update", ctx, "1", map[string]interface{}{"title": "Dune Messiah"}).
		Return(&models.Book{ID: "1", Title: "Dune Messiah"}, nil).Once()

	book, err := service.UpdateBook(ctx, "1", services.UpdateBookInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", book.Title)
	repo.AssertExpectations(t)
}

func TestBookService_DeleteBook(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newBookService()

	repo.On("GetByID", ctx, "99").Return(nil, repositories.ErrNotFound).Once()
	_, err := service.DeleteBook(ctx, "99")
	assert.ErrorIs(t, err, services.ErrBookNotFound)

	existing := &models.Book{ID: "1", Title: "Dune"}
	repo.On("GetByID", ctx, "1").Return(existing, nil).Once()
	repo.On("Delete", ctx, "1").Return(nil).Once()

	book, err := service.DeleteBook(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, existing, book)
	repo.AssertExpectations(t)
}
