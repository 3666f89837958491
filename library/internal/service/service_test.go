package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/model"
	"github.com/turnthepage/library-service/library/internal/repository/memory"
	"go.uber.org/zap/zaptest"
)

const (
	staff     = "Front Desk"
	librarian = "Head Librarian"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	svc    *Service
	repo   *memory.Repository
	clock  *fakeClock
	book   model.Book
	reader model.Reader
}

func newFixture(t *testing.T, copies int, opts ...Option) *fixture {
	t.Helper()
	repo := memory.New()
	clock := newClock()
	svc := NewService(repo, zaptest.NewLogger(t), append([]Option{WithClock(clock.Now)}, opts...)...)
	t.Cleanup(svc.Close)

	ctx := context.Background()
	book, err := repo.CreateBook(ctx, model.Book{
		ID: uuid.New(), ISBN: "9789552100001", Title: "Gamperaliya", Author: "Martin Wickramasinghe",
		CopiesAvailable: copies, TotalCopies: copies, CreatedBy: librarian, CreatedAt: clock.Now(),
	})
	require.NoError(t, err)
	reader, err := repo.CreateReader(ctx, model.Reader{
		ID: uuid.New(), MemberID: "Reader-2024-10001", Name: "Nimal Perera", Email: "nimal@example.com",
		CreatedBy: staff, CreatedAt: clock.Now(),
	})
	require.NoError(t, err)
	return &fixture{svc: svc, repo: repo, clock: clock, book: book, reader: reader}
}

func (f *fixture) lend(t *testing.T, dueDate string) model.Lending {
	t.Helper()
	l, err := f.svc.Lend(context.Background(), model.LendRequest{
		MemberID: f.reader.MemberID, ISBN: f.book.ISBN, DueDate: dueDate,
	}, staff)
	require.NoError(t, err)
	return l
}

func (f *fixture) copies(t *testing.T) int {
	t.Helper()
	b, err := f.repo.GetBook(context.Background(), f.book.ID)
	require.NoError(t, err)
	return b.CopiesAvailable
}
