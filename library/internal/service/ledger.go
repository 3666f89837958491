package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap"
)

const day = 24 * time.Hour

// Lend checks reader, book and stock in that order, then takes a copy and
// records the lending in one storage transaction.
func (s *Service) Lend(ctx context.Context, req model.LendRequest, actor string) (model.Lending, error) {
	memberID := strings.TrimSpace(req.MemberID)
	isbn := strings.TrimSpace(req.ISBN)
	if memberID == "" || isbn == "" {
		return model.Lending{}, errs.Invalid("memberId and isbn are required")
	}
	now := s.now()
	due := now.Add(time.Duration(s.policy.LoanDays) * day)
	if strings.TrimSpace(req.DueDate) != "" {
		var err error
		if due, err = model.ParseDate(req.DueDate); err != nil {
			return model.Lending{}, errs.Invalid("dueDate must be an RFC3339 timestamp or YYYY-MM-DD")
		}
	}

	reader, err := s.repo.GetReaderByMemberID(ctx, memberID)
	if err != nil {
		return model.Lending{}, errors.Wrap(err, "lookup reader")
	}
	book, err := s.repo.GetBookByISBN(ctx, isbn)
	if err != nil {
		return model.Lending{}, errors.Wrap(err, "lookup book")
	}
	if book.CopiesAvailable < 1 {
		return model.Lending{}, errs.ErrNoCopiesAvailable
	}

	lending, err := s.repo.CreateLending(ctx, model.NewLending{
		BookID:     book.ID,
		ReaderID:   reader.ID,
		BorrowDate: now,
		DueDate:    due,
		FinePerDay: s.policy.FinePerDay,
		CreatedBy:  actor,
	})
	if err != nil {
		return model.Lending{}, errors.Wrap(err, "create lending")
	}
	s.invalidateCounts()

	s.audit.Record(ctx, model.ActionLend, actor, model.EntityLending, lending.ID.String(),
		fmt.Sprintf("Book '%s' lent to '%s'", book.Title, reader.Name))
	s.log.Info("book lent",
		zap.String("lendingId", lending.ID.String()),
		zap.String("isbn", book.ISBN),
		zap.String("memberId", reader.MemberID),
		zap.Time("dueDate", lending.DueDate))
	return lending, nil
}

// ReturnBook closes an open lending and puts the copy back on the shelf.
func (s *Service) ReturnBook(ctx context.Context, id uuid.UUID, actor string) (model.LendingDetails, error) {
	res, err := s.repo.ReturnLending(ctx, id, actor, s.now())
	if err != nil {
		return model.LendingDetails{}, errors.Wrap(err, "return lending")
	}
	if res.Clamped {
		s.log.Warn("returned copy exceeds total stock, copies not incremented",
			zap.String("lendingId", id.String()),
			zap.String("bookId", res.Lending.BookID.String()))
	}
	s.invalidateCounts()

	s.audit.Record(ctx, model.ActionReturn, actor, model.EntityLending, id.String(),
		fmt.Sprintf("Book '%s' returned by '%s'", res.Lending.Book.Title, res.Lending.Reader.Name))
	return res.Lending, nil
}

// History lists lendings by book and/or reader after reconciling overdue state.
func (s *Service) History(ctx context.Context, filter model.LendingFilter) ([]model.LendingDetails, error) {
	if err := s.Reconcile(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListLendings(ctx, filter)
}

func (s *Service) Overdue(ctx context.Context) ([]model.LendingDetails, error) {
	return s.overdue(ctx, s.now())
}

func (s *Service) overdue(ctx context.Context, now time.Time) ([]model.LendingDetails, error) {
	if err := s.reconcile(ctx, now); err != nil {
		return nil, err
	}
	return s.repo.ListLendings(ctx, model.LendingFilter{Status: model.StatusOverdue})
}

// OverdueFines prices every overdue lending at the current time.
func (s *Service) OverdueFines(ctx context.Context) ([]model.OverdueFine, error) {
	now := s.now()
	items, err := s.overdue(ctx, now)
	if err != nil {
		return nil, err
	}
	fines := make([]model.OverdueFine, 0, len(items))
	for _, l := range items {
		fines = append(fines, model.ComputeFine(l, now))
	}
	return fines, nil
}
