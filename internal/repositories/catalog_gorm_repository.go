package repositories

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{db: db}
}

// ListCategories retrieves all categories ordered by name.
func (r *GORMCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category. A taken name yields ErrDuplicate.
func (r *GORMCatalogRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category %q: %w", category.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category and its links to books.
func (r *GORMCatalogRepository) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category := models.Category{ID: id}
		if err := tx.First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("category %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get category %d: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM book_categories WHERE category_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to unlink category %d: %w", id, err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, err)
		}
		return nil
	})
}

// CategoriesByIDs retrieves the categories with the given IDs.
func (r *GORMCatalogRepository) CategoriesByIDs(ctx context.Context, ids []uint) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// ListTags retrieves all tags ordered by name.
func (r *GORMCatalogRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// CreateTag inserts a tag. A taken name yields ErrDuplicate.
func (r *GORMCatalogRepository) CreateTag(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("tag %q: %w", tag.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// DeleteTag removes the tag and its links to books.
func (r *GORMCatalogRepository) DeleteTag(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tag := models.Tag{ID: id}
		if err := tx.First(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("tag %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get tag %d: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM book_tags WHERE tag_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to unlink tag %d: %w", id, err)
		}
		if err := tx.Delete(&tag).Error; err != nil {
			return fmt.Errorf("failed to delete tag %d: %w", id, err)
		}
		return nil
	})
}

// TagsByIDs retrieves the tags with the given IDs.
func (r *GORMCatalogRepository) TagsByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return tags, nil
}

// ListFormats retrieves every format ordered by ID.
func (r *GORMCatalogRepository) ListFormats(ctx context.Context) ([]models.Format, error) {
	formats := []models.Format{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&formats).Error; err != nil {
		return nil, fmt.Errorf("failed to list formats: %w", err)
	}
	return formats, nil
}

// FormatsByIDs retrieves the formats with the given IDs.
func (r *GORMCatalogRepository) FormatsByIDs(ctx context.Context, ids []uint) ([]models.Format, error) {
	var formats []models.Format
	if len(ids) == 0 {
		return formats, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&formats).Error; err != nil {
		return nil, fmt.Errorf("failed to get formats: %w", err)
	}
	return formats, nil
}
