package handlers

import (
	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves categories, tags and formats.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the public catalog listings.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleListCategories)
	router.Get("/tags", h.HandleListTags)
	router.Get("/formats", h.HandleListFormats)
}

// RegisterAdminRoutes registers catalog writes reserved to administrators.
func (h *CatalogHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/categories", h.HandleCreateCategory)
	router.Delete("/categories/:id", h.HandleDeleteCategory)
	router.Post("/tags", h.HandleCreateTag)
	router.Delete("/tags/:id", h.HandleDeleteTag)
}

// HandleListCategories retrieves all categories.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// HandleCreateCategory creates a new category.
func (h *CatalogHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var input services.NameInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	category, err := h.service.CreateCategory(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"category": category,
		"msg":      "Category created",
	})
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CatalogHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Category deleted"})
}

// HandleListTags retrieves all tags.
func (h *CatalogHandler) HandleListTags(c *fiber.Ctx) error {
	tags, err := h.service.ListTags(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tags": tags})
}

// HandleCreateTag creates a new tag.
func (h *CatalogHandler) HandleCreateTag(c *fiber.Ctx) error {
	var input services.NameInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	tag, err := h.service.CreateTag(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"tag": tag,
		"msg": "Tag created",
	})
}

// HandleDeleteTag deletes a tag by its ID.
func (h *CatalogHandler) HandleDeleteTag(c *fiber.Ctx) error {
	if err := h.service.DeleteTag(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Tag deleted"})
}

// HandleListFormats lists the fixed set of book formats.
func (h *CatalogHandler) HandleListFormats(c *fiber.Ctx) error {
	formats, err := h.service.ListFormats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"formats": formats})
}
