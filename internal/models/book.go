package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book represents a book in the store catalog.
type Book struct {
	ID         string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title      string         `json:"title" gorm:"type:varchar(255);not null;index"`
	Author     string         `json:"author" gorm:"type:varchar(255);not null;index"`
	// Lowercased copies of Title and Author. SQLite's LOWER only folds
	// ASCII, so case-insensitive search runs against these.
	SearchTitle  string `json:"-" gorm:"type:varchar(255);not null;default:'';index"`
	SearchAuthor string `json:"-" gorm:"type:varchar(255);not null;default:'';index"`
	Summary    string         `json:"summary" gorm:"type:text;not null"`
	Price      float64        `json:"price" gorm:"not null;index"`
	Stock      int            `json:"stock" gorm:"not null"`
	Categories []Category     `json:"categories,omitempty" gorm:"many2many:book_categories"`
	Tags       []Tag          `json:"tags,omitempty" gorm:"many2many:book_tags"`
	Formats    []Format       `json:"formats,omitempty" gorm:"many2many:book_formats"`
	OrderItems []OrderItem    `json:"orderItems,omitempty" gorm:"foreignKey:BookID"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID to books created without one, including
// batch inserts.
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// BeforeSave keeps the search columns in step with Title and Author.
func (b *Book) BeforeSave(tx *gorm.DB) error {
	b.SearchTitle = SearchKey(b.Title)
	b.SearchAuthor = SearchKey(b.Author)
	return nil
}

// SearchKey is the normalized form titles and authors are matched on.
func SearchKey(s string) string {
	return strings.ToLower(s)
}
