package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Status string

const (
	StatusBorrowed Status = "borrowed"
	StatusOverdue  Status = "overdue"
	StatusReturned Status = "returned"
)

type Lending struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	BookID     uuid.UUID       `json:"bookId" db:"book_id"`
	ReaderID   uuid.UUID       `json:"readerId" db:"reader_id"`
	BorrowDate time.Time       `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time       `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time      `json:"returnDate,omitempty" db:"return_date"`
	Status     Status          `json:"status" db:"status"`
	FinePerDay decimal.Decimal `json:"finePerDay" db:"fine_per_day"`
	CreatedBy  string          `json:"createdBy" db:"created_by"`
	UpdatedBy  *string         `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty" db:"updated_at"`
	DeletedBy  *string         `json:"deletedBy,omitempty" db:"deleted_by"`
	DeletedAt  *time.Time      `json:"deletedAt,omitempty" db:"deleted_at"`
}

// LendingDetails is a lending with the book and reader it references.
type LendingDetails struct {
	Lending
	Book   BookSummary   `json:"book"`
	Reader ReaderSummary `json:"reader"`
}

type LendRequest struct {
	MemberID string `json:"memberId"`
	ISBN     string `json:"isbn"`
	// DueDate is RFC3339 or 2006-01-02; empty means the default loan period.
	DueDate string `json:"dueDate"`
}

type LendingFilter struct {
	BookID   *uuid.UUID
	ReaderID *uuid.UUID
	Status   Status
}

type LendingResponse struct {
	Message string  `json:"message"`
	Lending Lending `json:"lending"`
}

type ReturnResponse struct {
	Message string         `json:"message"`
	Lending LendingDetails `json:"lending"`
}

// NewLending is what the ledger asks storage to persist on lend.
type NewLending struct {
	BookID     uuid.UUID
	ReaderID   uuid.UUID
	BorrowDate time.Time
	DueDate    time.Time
	FinePerDay decimal.Decimal
	CreatedBy  string
}

type ReturnResult struct {
	Lending LendingDetails
	// Clamped is set when the book already held totalCopies copies and was not incremented.
	Clamped bool
}
