package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// NameInput is the body for creating a category or a tag.
type NameInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CatalogService manages categories, tags and formats.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListCategories retrieves all categories sorted by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CreateCategory validates in and stores a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, in NameInput) (*models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	category := &models.Category{Name: in.Name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category and unlinks it from its books.
func (s *CatalogService) DeleteCategory(ctx context.Context, rawID string) error {
	id, err := parseUintID(rawID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// ListTags retrieves all tags sorted by name.
func (s *CatalogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.repo.ListTags(ctx)
}

// CreateTag validates in and stores a new tag.
func (s *CatalogService) CreateTag(ctx context.Context, in NameInput) (*models.Tag, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: in.Name}
	if err := s.repo.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTagExists
		}
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag and unlinks it from its books.
func (s *CatalogService) DeleteTag(ctx context.Context, rawID string) error {
	id, err := parseUintID(rawID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteTag(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return nil
}

// ListFormats retrieves the book formats.
func (s *CatalogService) ListFormats(ctx context.Context) ([]models.Format, error) {
	return s.repo.ListFormats(ctx)
}

func parseUintID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrIDRequired
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
