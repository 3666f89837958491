package model

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	ISBN            string     `json:"isbn" db:"isbn"`
	Title           string     `json:"title" db:"title"`
	Author          string     `json:"author" db:"author"`
	PublishedDate   *time.Time `json:"publishedDate,omitempty" db:"published_date"`
	Genre           *string    `json:"genre,omitempty" db:"genre"`
	Description     *string    `json:"description,omitempty" db:"description"`
	CoverURL        *string    `json:"coverUrl,omitempty" db:"cover_url"`
	CopiesAvailable int        `json:"copiesAvailable" db:"copies_available"`
	TotalCopies     int        `json:"totalCopies" db:"total_copies"`
	IsDeleted       bool       `json:"isDeleted" db:"is_deleted"`
	CreatedBy       string     `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedBy       *string    `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
	DeletedBy       *string    `json:"deletedBy,omitempty" db:"deleted_by"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

type BookSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

type CreateBookRequest struct {
	Title           string  `json:"title" validate:"required,max=255"`
	Author          string  `json:"author" validate:"required,max=255"`
	PublishedDate   *Date   `json:"publishedDate"`
	Genre           *string `json:"genre" validate:"omitempty,max=100"`
	Description     *string `json:"description"`
	CopiesAvailable *int    `json:"copiesAvailable" validate:"omitempty,min=0"`
}

// UpdateBookRequest is a partial update; nil fields are left as they are.
type UpdateBookRequest struct {
	Title           *string `json:"title" validate:"omitempty,max=255"`
	Author          *string `json:"author" validate:"omitempty,max=255"`
	PublishedDate   *Date   `json:"publishedDate"`
	Genre           *string `json:"genre" validate:"omitempty,max=100"`
	Description     *string `json:"description"`
	CopiesAvailable *int    `json:"copiesAvailable" validate:"omitempty,min=0"`
}

func (r UpdateBookRequest) Empty() bool {
	return r.Title == nil && r.Author == nil && r.PublishedDate == nil &&
		r.Genre == nil && r.Description == nil && r.CopiesAvailable == nil
}

// BookFilter matches case-insensitive substrings; empty fields are ignored.
type BookFilter struct {
	Title  string `query:"title"`
	Author string `query:"author"`
	Genre  string `query:"genre"`
	ISBN   string `query:"isbn"`
}

type BookResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}
