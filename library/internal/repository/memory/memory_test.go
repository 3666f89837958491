package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
)

var now = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T, r *Repository, copies int) (model.Book, model.Reader) {
	t.Helper()
	ctx := context.Background()
	b, err := r.CreateBook(ctx, model.Book{
		ID: uuid.New(), ISBN: "9780000000001", Title: "Madol Doova", Author: "Martin Wickramasinghe",
		CopiesAvailable: copies, TotalCopies: copies, CreatedBy: "Librarian", CreatedAt: now,
	})
	require.NoError(t, err)
	rd, err := r.CreateReader(ctx, model.Reader{
		ID: uuid.New(), MemberID: "Reader-2024-00001", Name: "Upali", Email: "upali@example.com",
		CreatedBy: "Staff", CreatedAt: now,
	})
	require.NoError(t, err)
	return b, rd
}

func newLending(b model.Book, rd model.Reader, due time.Time) model.NewLending {
	return model.NewLending{
		BookID: b.ID, ReaderID: rd.ID, BorrowDate: now, DueDate: due,
		FinePerDay: decimal.NewFromInt(10), CreatedBy: "Staff",
	}
}

func TestRepository_LastCopyConcurrentLends(t *testing.T) {
	t.Parallel()
	r := New()
	b, rd := seed(t, r, 1)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok, noCpy int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.CreateLending(context.Background(), newLending(b, rd, now.Add(time.Hour)))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, errs.ErrNoCopiesAvailable) {
				noCpy++
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, ok)
	require.Equal(t, n-1, noCpy)

	got, err := r.GetBook(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.CopiesAvailable)
}

func TestRepository_ReturnOnceAndClamp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := New()
	b, rd := seed(t, r, 2)

	l, err := r.CreateLending(ctx, newLending(b, rd, now.Add(time.Hour)))
	require.NoError(t, err)

	res, err := r.ReturnLending(ctx, l.ID, "Staff", now)
	require.NoError(t, err)
	require.False(t, res.Clamped)
	require.Equal(t, model.StatusReturned, res.Lending.Status)
	require.Equal(t, "Madol Doova", res.Lending.Book.Title)
	require.Equal(t, "Upali", res.Lending.Reader.Name)

	_, err = r.ReturnLending(ctx, l.ID, "Staff", now)
	require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	_, err = r.ReturnLending(ctx, uuid.New(), "Staff", now)
	require.ErrorIs(t, err, errs.ErrLendingNotFound)

	// stock shrank to the shelf count while the copy was out
	l2, err := r.CreateLending(ctx, newLending(b, rd, now.Add(time.Hour)))
	require.NoError(t, err)
	_, err = r.UpdateBook(ctx, b.ID, model.UpdateBookRequest{CopiesAvailable: ptr(2)}, "Librarian", now)
	require.NoError(t, err)
	res, err = r.ReturnLending(ctx, l2.ID, "Staff", now)
	require.NoError(t, err)
	require.False(t, res.Clamped)

	got, _ := r.GetBook(ctx, b.ID)
	require.Equal(t, 3, got.CopiesAvailable)
	require.Equal(t, 3, got.TotalCopies)
}

func TestRepository_ClampAtTotal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := New()
	b, rd := seed(t, r, 1)

	l, err := r.CreateLending(ctx, newLending(b, rd, now.Add(time.Hour)))
	require.NoError(t, err)
	// librarian restocks the shelf by hand while the copy is out
	_, err = r.UpdateBook(ctx, b.ID, model.UpdateBookRequest{CopiesAvailable: ptr(1)}, "Librarian", now)
	require.NoError(t, err)
	got, _ := r.GetBook(ctx, b.ID)
	require.Equal(t, 2, got.TotalCopies)

	r.mu.Lock()
	bk := r.books[b.ID]
	bk.TotalCopies = 1
	r.books[b.ID] = bk
	r.mu.Unlock()

	res, err := r.ReturnLending(ctx, l.ID, "Staff", now)
	require.NoError(t, err)
	require.True(t, res.Clamped)
	got, _ = r.GetBook(ctx, b.ID)
	require.Equal(t, 1, got.CopiesAvailable)
}

func TestRepository_MarkOverdue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := New()
	b, rd := seed(t, r, 3)

	past, err := r.CreateLending(ctx, newLending(b, rd, now.Add(-time.Hour)))
	require.NoError(t, err)
	_, err = r.CreateLending(ctx, newLending(b, rd, now.Add(time.Hour)))
	require.NoError(t, err)

	n, err := r.MarkOverdue(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	n, err = r.MarkOverdue(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	overdue, err := r.ListLendings(ctx, model.LendingFilter{Status: model.StatusOverdue})
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, past.ID, overdue[0].ID)

	cnt, err := r.Count(ctx, model.CountOverdue, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)
	cnt, err = r.Count(ctx, model.CountLentOut, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, cnt)
	cnt, err = r.Count(ctx, model.CountDueToday, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, cnt)
}

func TestRepository_ReaderConstraints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := New()
	_, rd := seed(t, r, 1)

	_, err := r.CreateReader(ctx, model.Reader{ID: uuid.New(), MemberID: rd.MemberID, Email: "x@example.com"})
	require.ErrorIs(t, err, errs.ErrMemberIDTaken)
	_, err = r.CreateReader(ctx, model.Reader{ID: uuid.New(), MemberID: "Reader-2024-00002", Email: rd.Email})
	require.ErrorIs(t, err, errs.ErrDuplicateEmail)

	_, err = r.DeactivateReader(ctx, rd.ID, "Admin", now)
	require.NoError(t, err)
	_, err = r.GetReaderByMemberID(ctx, rd.MemberID)
	require.ErrorIs(t, err, errs.ErrReaderNotFound)
}

func TestRepository_ListBooksFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := New()
	seed(t, r, 1)
	_, err := r.CreateBook(ctx, model.Book{ID: uuid.New(), ISBN: "9780000000002", Title: "Viragaya", Author: "Martin Wickramasinghe", CreatedAt: now})
	require.NoError(t, err)
	_, err = r.CreateBook(ctx, model.Book{ID: uuid.New(), ISBN: "9780000000002", Title: "Dup"})
	require.ErrorIs(t, err, errs.ErrISBNTaken)

	books, err := r.ListBooks(ctx, model.BookFilter{Author: "wickrama"})
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "Madol Doova", books[0].Title)

	books, err = r.ListBooks(ctx, model.BookFilter{Title: "VIRA"})
	require.NoError(t, err)
	require.Len(t, books, 1)

	_, err = r.DeleteBook(ctx, books[0].ID, "Admin", now)
	require.NoError(t, err)
	books, err = r.ListBooks(ctx, model.BookFilter{})
	require.NoError(t, err)
	require.Len(t, books, 1)
}
