package repositories

import (
	"context"

	"bookstore/internal/models"
)

// CatalogRepository defines data access for the reference data books are
// classified by: categories, tags and formats.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
	CategoriesByIDs(ctx context.Context, ids []uint) ([]models.Category, error)

	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, tag *models.Tag) error
	DeleteTag(ctx context.Context, id uint) error
	TagsByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)

	ListFormats(ctx context.Context) ([]models.Format, error)
	FormatsByIDs(ctx context.Context, ids []uint) ([]models.Format, error)
}
