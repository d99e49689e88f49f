package services

// ValidationError reports a request that is missing or carries invalid
// input. It maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that the requested record does not exist. It maps
// to 404.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// ConflictError reports a write rejected by the current state of the
// store. It maps to 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// UnauthorizedError maps to 401.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string { return e.Msg }

// ForbiddenError maps to 403.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string { return e.Msg }

var (
	ErrIDRequired = &ValidationError{Msg: "ID not provided"}
	ErrInvalidID  = &ValidationError{Msg: "Invalid ID"}

	ErrBookNotFound     = &NotFoundError{Msg: "Book not found"}
	ErrNoBooksFound     = &NotFoundError{Msg: "No books found"}
	ErrNoBooks          = &NotFoundError{Msg: "There are no books"}
	ErrBooksRequired    = &ValidationError{Msg: "Books not provided"}
	ErrBookDataRequired = &ValidationError{Msg: "Book data not provided"}

	ErrUserNotFound     = &NotFoundError{Msg: "User not found"}
	ErrNoUsers          = &NotFoundError{Msg: "Users not found"}
	ErrUserDataRequired = &ValidationError{Msg: "Data not provided"}

	ErrCategoryNotFound = &NotFoundError{Msg: "Category not found"}
	ErrCategoryExists   = &ConflictError{Msg: "Category already exists"}
	ErrTagNotFound      = &NotFoundError{Msg: "Tag not found"}
	ErrTagExists        = &ConflictError{Msg: "Tag already exists"}

	ErrOrderNotFound     = &NotFoundError{Msg: "Order not found"}
	ErrInsufficientStock = &ConflictError{Msg: "Insufficient stock"}
	ErrInvalidStatus     = &ValidationError{Msg: "Invalid order status"}

	ErrMissingToken  = &UnauthorizedError{Msg: "Authorization header is required"}
	ErrInvalidToken  = &UnauthorizedError{Msg: "Invalid or expired token"}
	ErrUserBanned    = &ForbiddenError{Msg: "User is banned"}
	ErrAdminRequired = &ForbiddenError{Msg: "Administrator role required"}
)
