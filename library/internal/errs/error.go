package errs

import (
	"errors"
)

// Kinds. Every error the ledger returns to a caller unwraps to one of these
// or is treated as internal.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
)

// Error is a client-facing message bound to a kind.
type Error struct {
	msg  string
	kind error
}

func New(kind error, msg string) *Error {
	return &Error{msg: msg, kind: kind}
}

func Invalid(msg string) *Error {
	return New(ErrInvalidRequest, msg)
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

var (
	ErrReaderNotFound  = New(ErrNotFound, "Reader not found")
	ErrBookNotFound    = New(ErrNotFound, "Book not found")
	ErrLendingNotFound = New(ErrNotFound, "Lending not found")

	ErrNoCopiesAvailable = New(ErrConflict, "No copies available for lending")
	ErrAlreadyReturned   = New(ErrConflict, "Book already returned")
	ErrDuplicate         = New(ErrConflict, "Duplicate entry")
	ErrDuplicateEmail    = New(ErrDuplicate, "Email already in use")
	ErrDuplicateNIC      = New(ErrDuplicate, "NIC already in use")
)

// Generated identifiers clashed; the caller regenerates and retries.
var (
	ErrMemberIDTaken = errors.New("member id taken")
	ErrISBNTaken     = errors.New("isbn taken")
)

type ErrorResponse struct {
	Message string `json:"message"`
}
