// Package memory is a mutex-guarded Repository used by tests and by the
// LIBRARY_STORAGE=memory mode. It mirrors the constraints of the SQL schema.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
	"github.com/turnthepage/library-service/library/internal/repository"
)

var _ repository.Repository = (*Repository)(nil)

type Repository struct {
	mu       sync.Mutex
	books    map[uuid.UUID]model.Book
	readers  map[uuid.UUID]model.Reader
	lendings map[uuid.UUID]model.Lending
	// insertion order of lendings; ids are random
	order []uuid.UUID
	audit []model.AuditLog
}

func New() *Repository {
	return &Repository{
		books:    make(map[uuid.UUID]model.Book),
		readers:  make(map[uuid.UUID]model.Reader),
		lendings: make(map[uuid.UUID]model.Lending),
	}
}

func containsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T { return &v }

// Books

func (r *Repository) CreateBook(_ context.Context, b model.Book) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.books {
		if other.ISBN == b.ISBN {
			return model.Book{}, errs.ErrISBNTaken
		}
	}
	r.books[b.ID] = b
	return b, nil
}

func (r *Repository) GetBook(_ context.Context, id uuid.UUID) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok || b.IsDeleted {
		return model.Book{}, errs.ErrBookNotFound
	}
	return b, nil
}

func (r *Repository) GetBookByISBN(_ context.Context, isbn string) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn && !b.IsDeleted {
			return b, nil
		}
	}
	return model.Book{}, errs.ErrBookNotFound
}

func (r *Repository) ListBooks(_ context.Context, f model.BookFilter) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if b.IsDeleted {
			continue
		}
		if containsFold(b.Title, f.Title) && containsFold(b.Author, f.Author) &&
			containsFold(deref(b.Genre), f.Genre) && containsFold(b.ISBN, f.ISBN) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title == out[j].Title {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (r *Repository) UpdateBook(_ context.Context, id uuid.UUID, req model.UpdateBookRequest, actor string, at time.Time) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok || b.IsDeleted {
		return model.Book{}, errs.ErrBookNotFound
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.PublishedDate != nil {
		b.PublishedDate = req.PublishedDate.Ptr()
	}
	if req.Genre != nil {
		b.Genre = ptr(*req.Genre)
	}
	if req.Description != nil {
		b.Description = ptr(*req.Description)
	}
	if req.CopiesAvailable != nil {
		n := *req.CopiesAvailable
		b.TotalCopies += n - b.CopiesAvailable
		b.CopiesAvailable = n
	}
	b.UpdatedBy = &actor
	b.UpdatedAt = &at
	r.books[id] = b
	return b, nil
}

func (r *Repository) SetBookCover(_ context.Context, id uuid.UUID, url, actor string, at time.Time) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok || b.IsDeleted {
		return model.Book{}, errs.ErrBookNotFound
	}
	b.CoverURL = &url
	b.UpdatedBy = &actor
	b.UpdatedAt = &at
	r.books[id] = b
	return b, nil
}

func (r *Repository) DeleteBook(_ context.Context, id uuid.UUID, actor string, at time.Time) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok || b.IsDeleted {
		return model.Book{}, errs.ErrBookNotFound
	}
	b.IsDeleted = true
	b.DeletedBy = &actor
	b.DeletedAt = &at
	r.books[id] = b
	return b, nil
}

// Readers

func (r *Repository) readerClash(rd model.Reader) error {
	for _, other := range r.readers {
		if other.ID == rd.ID {
			continue
		}
		switch {
		case other.MemberID == rd.MemberID:
			return errs.ErrMemberIDTaken
		case other.Email == rd.Email:
			return errs.ErrDuplicateEmail
		case rd.NIC != nil && other.NIC != nil && *other.NIC == *rd.NIC:
			return errs.ErrDuplicateNIC
		}
	}
	return nil
}

func (r *Repository) CreateReader(_ context.Context, rd model.Reader) (model.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.readerClash(rd); err != nil {
		return model.Reader{}, err
	}
	rd.IsActive = true
	r.readers[rd.ID] = rd
	return rd, nil
}

func (r *Repository) GetReaderByMemberID(_ context.Context, memberID string) (model.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rd := range r.readers {
		if rd.MemberID == memberID && rd.IsActive {
			return rd, nil
		}
	}
	return model.Reader{}, errs.ErrReaderNotFound
}

func (r *Repository) ListReaders(_ context.Context, f model.ReaderFilter) ([]model.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Reader, 0, len(r.readers))
	for _, rd := range r.readers {
		if !rd.IsActive {
			continue
		}
		if containsFold(rd.Name, f.Name) && containsFold(rd.Email, f.Email) &&
			containsFold(deref(rd.NIC), f.NIC) && containsFold(deref(rd.Phone), f.Phone) {
			out = append(out, rd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repository) UpdateReader(_ context.Context, id uuid.UUID, req model.UpdateReaderRequest, actor string, at time.Time) (model.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rd, ok := r.readers[id]
	if !ok || !rd.IsActive {
		return model.Reader{}, errs.ErrReaderNotFound
	}
	if req.Name != nil {
		rd.Name = *req.Name
	}
	if req.Email != nil {
		rd.Email = strings.ToLower(*req.Email)
	}
	if req.NIC != nil {
		rd.NIC = ptr(*req.NIC)
	}
	if req.Phone != nil {
		rd.Phone = ptr(*req.Phone)
	}
	if req.Address != nil {
		rd.Address = ptr(*req.Address)
	}
	if req.DateOfBirth != nil {
		rd.DateOfBirth = req.DateOfBirth.Ptr()
	}
	if err := r.readerClash(rd); err != nil {
		return model.Reader{}, err
	}
	rd.UpdatedBy = &actor
	rd.UpdatedAt = &at
	r.readers[id] = rd
	return rd, nil
}

func (r *Repository) DeactivateReader(_ context.Context, id uuid.UUID, actor string, at time.Time) (model.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rd, ok := r.readers[id]
	if !ok || !rd.IsActive {
		return model.Reader{}, errs.ErrReaderNotFound
	}
	rd.IsActive = false
	rd.DeletedBy = &actor
	rd.DeletedAt = &at
	r.readers[id] = rd
	return rd, nil
}

// Lendings

func (r *Repository) CreateLending(_ context.Context, nl model.NewLending) (model.Lending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[nl.BookID]
	if !ok || b.IsDeleted {
		return model.Lending{}, errs.ErrBookNotFound
	}
	if b.CopiesAvailable <= 0 {
		return model.Lending{}, errs.ErrNoCopiesAvailable
	}
	if _, ok := r.readers[nl.ReaderID]; !ok {
		return model.Lending{}, errors.Errorf("reader %s violates lendings_reader_id_fkey", nl.ReaderID)
	}
	b.CopiesAvailable--
	r.books[b.ID] = b

	l := model.Lending{
		ID:         uuid.New(),
		BookID:     nl.BookID,
		ReaderID:   nl.ReaderID,
		BorrowDate: nl.BorrowDate,
		DueDate:    nl.DueDate,
		Status:     model.StatusBorrowed,
		FinePerDay: nl.FinePerDay,
		CreatedBy:  nl.CreatedBy,
	}
	r.lendings[l.ID] = l
	r.order = append(r.order, l.ID)
	return l, nil
}

func (r *Repository) details(l model.Lending) model.LendingDetails {
	b := r.books[l.BookID]
	rd := r.readers[l.ReaderID]
	return model.LendingDetails{
		Lending: l,
		Book:    model.BookSummary{Title: b.Title, Author: b.Author, ISBN: b.ISBN},
		Reader:  model.ReaderSummary{Name: rd.Name, Email: rd.Email},
	}
}

func (r *Repository) ReturnLending(_ context.Context, id uuid.UUID, actor string, at time.Time) (model.ReturnResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lendings[id]
	if !ok {
		return model.ReturnResult{}, errs.ErrLendingNotFound
	}
	if l.Status == model.StatusReturned {
		return model.ReturnResult{}, errs.ErrAlreadyReturned
	}
	l.Status = model.StatusReturned
	l.ReturnDate = &at
	l.UpdatedBy = &actor
	l.UpdatedAt = &at
	r.lendings[id] = l

	var res model.ReturnResult
	b := r.books[l.BookID]
	if b.CopiesAvailable < b.TotalCopies {
		b.CopiesAvailable++
		r.books[b.ID] = b
	} else {
		res.Clamped = true
	}
	res.Lending = r.details(l)
	return res, nil
}

func (r *Repository) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, l := range r.lendings {
		if l.Status == model.StatusBorrowed && l.DueDate.Before(now) {
			l.Status = model.StatusOverdue
			r.lendings[id] = l
			n++
		}
	}
	return n, nil
}

func (r *Repository) ListLendings(_ context.Context, f model.LendingFilter) ([]model.LendingDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.LendingDetails, 0)
	for _, id := range r.order {
		l := r.lendings[id]
		if f.BookID != nil && l.BookID != *f.BookID {
			continue
		}
		if f.ReaderID != nil && l.ReaderID != *f.ReaderID {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		out = append(out, r.details(l))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].BorrowDate.Before(out[j].BorrowDate) })
	return out, nil
}

// Audit

func (r *Repository) AppendAudit(_ context.Context, e model.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.audit {
		if existing.ID == e.ID {
			return nil
		}
	}
	r.audit = append(r.audit, e)
	return nil
}

func (r *Repository) ListAudit(_ context.Context) ([]model.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.AuditLog, len(r.audit))
	copy(out, r.audit)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// Counts

func (r *Repository) Count(_ context.Context, c model.Counter, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	switch c {
	case model.CountBooks:
		for _, b := range r.books {
			if !b.IsDeleted {
				n++
			}
		}
	case model.CountReaders:
		for _, rd := range r.readers {
			if rd.IsActive {
				n++
			}
		}
	case model.CountLentOut, model.CountOverdue, model.CountDueToday:
		start, end := model.DayBounds(now)
		for _, l := range r.lendings {
			if l.ReturnDate != nil {
				continue
			}
			switch {
			case c == model.CountLentOut && l.Status == model.StatusBorrowed,
				c == model.CountOverdue && l.Status == model.StatusOverdue && l.DueDate.Before(now),
				c == model.CountDueToday && !l.DueDate.Before(start) && l.DueDate.Before(end):
				n++
			}
		}
	default:
		return 0, errors.Errorf("unknown counter %d", c)
	}
	return n, nil
}
