package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines which endpoints a user may call.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleUser     Role = "user"
)

// User represents an account of the store.
type User struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string         `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Nickname  string         `json:"nickname" gorm:"type:varchar(100)"`
	Platform  string         `json:"platform" gorm:"type:varchar(50)"`
	Password  string         `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role      Role           `json:"role" gorm:"type:varchar(20);not null;default:user"`
	Phone     string         `json:"phone" gorm:"type:varchar(50)"`
	Picture   string         `json:"picture" gorm:"type:varchar(512)"`
	Name      string         `json:"name" gorm:"type:varchar(255)"`
	Country   string         `json:"country" gorm:"type:varchar(100)"`
	City      string         `json:"city" gorm:"type:varchar(100)"`
	IsBanned  bool           `json:"isBanned" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID to users created without one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
