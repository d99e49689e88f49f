package models

import "time"

// Category groups books by genre or subject.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Tag is a free-form label attached to books.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// FormatType enumerates the editions a book can be sold in.
type FormatType string

const (
	FormatPhysical  FormatType = "PHYSICAL"
	FormatEbook     FormatType = "EBOOK"
	FormatAudiobook FormatType = "AUDIOBOOK"
)

// FormatTypes lists every known format, in display order.
var FormatTypes = []FormatType{FormatPhysical, FormatEbook, FormatAudiobook}

// Format is a reference row for one FormatType.
type Format struct {
	ID   uint       `json:"id" gorm:"primaryKey"`
	Type FormatType `json:"type" gorm:"type:varchar(20);uniqueIndex;not null"`
}
