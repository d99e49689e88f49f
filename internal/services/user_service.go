package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/models"
	"bookstore/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserData holds the user fields an administrator may change. A field left
// at its zero value ("" or false) keeps the stored value.
type UserData struct {
	Email    string      `json:"email" validate:"omitempty,email"`
	Nickname string      `json:"nickname"`
	Platform string      `json:"platform"`
	Password string      `json:"password" validate:"omitempty,min=6"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=admin operator user"`
	Phone    string      `json:"phone"`
	Picture  string      `json:"picture"`
	Name     string      `json:"name"`
	Country  string      `json:"country"`
	City     string      `json:"city"`
	IsBanned bool        `json:"isBanned"`
}

// UpdateUserInput is the body of an admin user update.
type UpdateUserInput struct {
	Data *UserData `json:"data"`
}

// BanStateData holds the new ban flag.
type BanStateData struct {
	IsBanned bool `json:"isBanned"`
}

// UpdateBanStateInput is the body of an admin ban-state update.
type UpdateBanStateInput struct {
	Data *BanStateData `json:"data"`
}

// UserService handles administrative operations on user accounts. Callers
// are expected to have passed the admin gate.
type UserService struct {
	repo       repositories.UserRepository
	events     Publisher
	bcryptCost int
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(repo repositories.UserRepository, events Publisher) *UserService {
	return &UserService{
		repo:       repo,
		events:     events,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// ListUsers returns every user account.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

// UpdateUser merges in.Data over the stored user. Only non-zero incoming
// values replace stored ones, so a field cannot be cleared and a user cannot
// be un-banned through this call.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	if in.Data == nil {
		return nil, ErrUserDataRequired
	}
	data := *in.Data
	if err := validateStruct(data); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	password := user.Password
	if data.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		password = string(hashed)
	}

	user.Email = keepUnlessSet(data.Email, user.Email)
	user.Nickname = keepUnlessSet(data.Nickname, user.Nickname)
	user.Platform = keepUnlessSet(data.Platform, user.Platform)
	user.Password = password
	user.Role = keepUnlessSet(data.Role, user.Role)
	user.Phone = keepUnlessSet(data.Phone, user.Phone)
	user.Picture = keepUnlessSet(data.Picture, user.Picture)
	user.Name = keepUnlessSet(data.Name, user.Name)
	user.Country = keepUnlessSet(data.Country, user.Country)
	user.City = keepUnlessSet(data.City, user.City)
	user.IsBanned = keepUnlessSet(data.IsBanned, user.IsBanned)

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.events, EventUserUpdated, user)
	return user, nil
}

// UpdateBanState sets the ban flag of a user. Like UpdateUser, a false
// value keeps the stored flag.
func (s *UserService) UpdateBanState(ctx context.Context, id string, in UpdateBanStateInput) (*models.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	if in.Data == nil {
		return nil, ErrUserDataRequired
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsBanned = keepUnlessSet(in.Data.IsBanned, user.IsBanned)

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.events, EventUserBanUpdated, map[string]interface{}{
		"userId":   user.ID,
		"isBanned": user.IsBanned,
	})
	return user, nil
}

func (s *UserService) getUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) save(ctx context.Context, user *models.User) error {
	if err := s.repo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return &ConflictError{Msg: "Email already registered"}
		}
		return err
	}
	return nil
}

// keepUnlessSet returns next unless it is the zero value, in which case the
// current value is kept.
func keepUnlessSet[T comparable](next, current T) T {
	var zero T
	if next == zero {
		return current
	}
	return next
}
