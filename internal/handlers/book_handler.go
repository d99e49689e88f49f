package handlers

import (
	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	service *services.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service *services.BookService) *BookHandler {
	return &BookHandler{
		service: service,
	}
}

// RegisterRoutes registers the book routes under /books.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleListBooks)
	bookRoutes.Post("/", h.HandleCreateBook)
	bookRoutes.Post("/bulk", h.HandleCreateBooksBulk)
	bookRoutes.Get("/:id", h.HandleGetBook)
	bookRoutes.Put("/:id", h.HandleUpdateBook)
	bookRoutes.Delete("/:id", h.HandleDeleteBook)
}

// HandleListBooks lists books, filtered by price range, title or author.
func (h *BookHandler) HandleListBooks(c *fiber.Ctx) error {
	var params services.BookQueryParams
	if err := c.QueryParser(&params); err != nil {
		return &services.ValidationError{Msg: "Invalid query parameters"}
	}

	books, err := h.service.ListBooks(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"books": books})
}

// HandleGetBook retrieves a single book by its ID.
func (h *BookHandler) HandleGetBook(c *fiber.Ctx) error {
	book, err := h.service.GetBook(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"book": book})
}

// HandleCreateBook creates a new book.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var input services.CreateBookInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	book, err := h.service.CreateBook(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"book": book,
		"msg":  "Book created",
	})
}

type bulkBooksRequest struct {
	Books []services.CreateBookInput `json:"books"`
}

// HandleCreateBooksBulk creates several books in one batch.
func (h *BookHandler) HandleCreateBooksBulk(c *fiber.Ctx) error {
	var req bulkBooksRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	books, err := h.service.CreateBooksBulk(c.UserContext(), req.Books)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		return c.JSON(fiber.Map{"msg": "Could not create the books"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"books": books,
		"msg":   "Books created",
	})
}

// HandleUpdateBook applies a partial update to a book.
func (h *BookHandler) HandleUpdateBook(c *fiber.Ctx) error {
	var input services.UpdateBookInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	book, err := h.service.UpdateBook(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"book": book,
		"msg":  "Book updated",
	})
}

// HandleDeleteBook deletes a book and returns its last state.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	book, err := h.service.DeleteBook(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"book": book,
		"msg":  "Book deleted",
	})
}
