package book

import (
	"errors"
	"time"
)

// SearchLimit caps the number of rows a free-text search returns.
const SearchLimit = 500

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicate is returned when an insert collides with an existing external id.
	ErrDuplicate = errors.New("book already exists")
)

// Book represents a catalog entry. PK is the internal key; ID is the
// sequential identifier clients use in URLs.
type Book struct {
	PK        string    `json:"-"`
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	Reviews   []string  `json:"reviews"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBook is the input for adding a book.
type NewBook struct {
	Title  string `json:"title" mod:"trim" validate:"required,min=2,max=100"`
	Author string `json:"author" mod:"trim" validate:"required,min=2,max=100"`
	Genre  string `json:"genre" mod:"trim" validate:"required,min=2,max=100"`
}

// SearchResult is one capped search response. Truncated reports that more
// than SearchLimit books matched and only the newest SearchLimit are listed.
type SearchResult struct {
	Books     []Book `json:"books"`
	Count     int    `json:"count"`
	Truncated bool   `json:"truncated"`
}
