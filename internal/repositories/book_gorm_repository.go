package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/models"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

// Find runs the listing query described by filter.
func (r *GORMBookRepository) Find(ctx context.Context, filter BookFilter) ([]models.Book, error) {
	q := r.db.WithContext(ctx).Model(&models.Book{})

	switch filter.Kind {
	case FilterPriceRange:
		q = withAssociations(q).Where("price BETWEEN ? AND ?", filter.MinPrice, filter.MaxPrice)
		filter.Order = SortAsc
	case FilterTitle:
		q = q.Where(`search_title LIKE ? ESCAPE '\'`, containsPattern(filter.Term))
	case FilterAuthor:
		q = q.Where(`search_author LIKE ? ESCAPE '\'`, containsPattern(filter.Term))
	}

	switch filter.Order {
	case SortAsc:
		q = q.Order("price ASC")
	case SortDesc:
		q = q.Order("price DESC")
	}

	var books []models.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to list books (%s): %w", filter.Kind, err)
	}
	return books, nil
}

// GetByID retrieves a single book with its associations.
func (r *GORMBookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	if err := withAssociations(r.db.WithContext(ctx)).First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get book by ID %s: %w", id, err)
	}
	return &book, nil
}

// Create inserts a book together with its category, tag and format links.
func (r *GORMBookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// CreateBatch inserts all books in a single statement and reports how many
// rows were written.
func (r *GORMBookRepository) CreateBatch(ctx context.Context, books []models.Book) (int64, error) {
	res := r.db.WithContext(ctx).Create(&books)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to create books: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Update writes the given columns of an existing book. Changing the title
// or author also refreshes its search column.
func (r *GORMBookRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Book, error) {
	res := r.db.WithContext(ctx).Model(&models.Book{ID: id}).Updates(withSearchColumns(fields))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update book %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("book with ID %s not updated: %w", id, ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete soft-deletes a book by its ID.
func (r *GORMBookRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Book{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete book %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("book with ID %s not deleted: %w", id, ErrNotFound)
	}
	return nil
}

func withAssociations(q *gorm.DB) *gorm.DB {
	return q.Preload("Categories").Preload("Tags").Preload("Formats").Preload("OrderItems")
}

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(models.SearchKey(term)) + "%"
}

func withSearchColumns(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	if title, ok := fields["title"].(string); ok {
		out["search_title"] = models.SearchKey(title)
	}
	if author, ok := fields["author"].(string); ok {
		out["search_author"] = models.SearchKey(author)
	}
	return out
}
