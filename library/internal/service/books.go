package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
	"github.com/turnthepage/library-service/pkg/storage"
)

const maxIDAttempts = 5

// generateISBN returns a random 13-digit number without a leading zero.
func generateISBN() string {
	return strconv.FormatInt(1_000_000_000_000+rand.Int63n(9_000_000_000_000), 10)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest, actor string) (model.Book, error) {
	copies := 1
	if req.CopiesAvailable != nil {
		copies = *req.CopiesAvailable
	}
	book := model.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublishedDate:   req.PublishedDate.Ptr(),
		Genre:           req.Genre,
		Description:     req.Description,
		CopiesAvailable: copies,
		TotalCopies:     copies,
		CreatedBy:       actor,
		CreatedAt:       s.now(),
	}

	var (
		created model.Book
		err     error
	)
	for i := 0; i < maxIDAttempts; i++ {
		book.ID = uuid.New()
		book.ISBN = generateISBN()
		created, err = s.repo.CreateBook(ctx, book)
		if !errors.Is(err, errs.ErrISBNTaken) {
			break
		}
	}
	if err != nil {
		return model.Book{}, errors.Wrap(err, "create book")
	}
	s.invalidateCounts()

	s.audit.Record(ctx, model.ActionCreate, actor, model.EntityBook, created.ID.String(),
		fmt.Sprintf("Book '%s' created", created.Title))
	return created, nil
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest, actor string) (model.Book, error) {
	if req.Empty() {
		return model.Book{}, errs.Invalid("nothing to update")
	}
	book, err := s.repo.UpdateBook(ctx, id, req, actor, s.now())
	if err != nil {
		return model.Book{}, errors.Wrap(err, "update book")
	}
	s.audit.Record(ctx, model.ActionUpdate, actor, model.EntityBook, book.ID.String(),
		fmt.Sprintf("Book '%s' updated", book.Title))
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID, actor string) (model.Book, error) {
	book, err := s.repo.DeleteBook(ctx, id, actor, s.now())
	if err != nil {
		return model.Book{}, errors.Wrap(err, "delete book")
	}
	s.invalidateCounts()

	s.audit.Record(ctx, model.ActionDelete, actor, model.EntityBook, book.ID.String(),
		fmt.Sprintf("Book '%s' soft deleted", book.Title))
	return book, nil
}

// UploadCover stores the image and points the book at it.
func (s *Service) UploadCover(ctx context.Context, id uuid.UUID, body []byte, actor string) (model.Book, error) {
	if s.covers == nil {
		return model.Book{}, errors.New("cover storage is not configured")
	}
	if _, err := s.repo.GetBook(ctx, id); err != nil {
		return model.Book{}, errors.Wrap(err, "lookup book")
	}
	url, err := s.covers.PutCover(ctx, id.String(), body)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) || errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrEmpty) {
			return model.Book{}, errs.Invalid(err.Error())
		}
		return model.Book{}, errors.Wrap(err, "put cover")
	}
	book, err := s.repo.SetBookCover(ctx, id, url, actor, s.now())
	if err != nil {
		return model.Book{}, errors.Wrap(err, "set cover")
	}
	s.audit.Record(ctx, model.ActionUpdate, actor, model.EntityBook, book.ID.String(),
		fmt.Sprintf("Book '%s' cover updated", book.Title))
	return book, nil
}
