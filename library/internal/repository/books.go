package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap"
)

var bookColumns = []string{
	"id", "isbn", "title", "author", "published_date", "genre", "description", "cover_url",
	"copies_available", "total_copies", "is_deleted",
	"created_by", "created_at", "updated_by", "updated_at", "deleted_by", "deleted_at",
}

var returningBook = "returning " + strings.Join(bookColumns, ", ")

func (r *repository) queryBook(ctx context.Context, query string, args ...any) (model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, b model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("id", "isbn", "title", "author", "published_date", "genre", "description",
			"copies_available", "total_copies", "created_by", "created_at").
		Values(b.ID, b.ISBN, b.Title, b.Author, b.PublishedDate, b.Genre, b.Description,
			b.CopiesAvailable, b.TotalCopies, b.CreatedBy, b.CreatedAt).
		Suffix(returningBook).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	book, err := r.queryBook(ctx, query, args...)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return model.Book{}, errs.ErrISBNTaken
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.queryBook(ctx, query, args...)
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"isbn": isbn, "is_deleted": false}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.queryBook(ctx, query, args...)
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("title", "created_at")
	if filter.Title != "" {
		q = q.Where(sq.ILike{"title": contains(filter.Title)})
	}
	if filter.Author != "" {
		q = q.Where(sq.ILike{"author": contains(filter.Author)})
	}
	if filter.Genre != "" {
		q = q.Where(sq.ILike{"genre": contains(filter.Genre)})
	}
	if filter.ISBN != "" {
		q = q.Where(sq.ILike{"isbn": contains(filter.ISBN)})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest, actor string, at time.Time) (model.Book, error) {
	q := qb.Update(booksTableName).
		Set("updated_by", actor).
		Set("updated_at", at)
	if req.Title != nil {
		q = q.Set("title", *req.Title)
	}
	if req.Author != nil {
		q = q.Set("author", *req.Author)
	}
	if req.PublishedDate != nil {
		q = q.Set("published_date", req.PublishedDate.Ptr())
	}
	if req.Genre != nil {
		q = q.Set("genre", *req.Genre)
	}
	if req.Description != nil {
		q = q.Set("description", *req.Description)
	}
	if req.CopiesAvailable != nil {
		// stock moves by the same delta as the shelf count
		n := *req.CopiesAvailable
		q = q.Set("copies_available", n).
			Set("total_copies", sq.Expr("total_copies + (?::int - copies_available)", n))
	}
	query, args, err := q.
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix(returningBook).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.queryBook(ctx, query, args...)
}

func (r *repository) SetBookCover(ctx context.Context, id uuid.UUID, url, actor string, at time.Time) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("cover_url", url).
		Set("updated_by", actor).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix(returningBook).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.queryBook(ctx, query, args...)
}

func (r *repository) DeleteBook(ctx context.Context, id uuid.UUID, actor string, at time.Time) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("is_deleted", true).
		Set("deleted_by", actor).
		Set("deleted_at", at).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix(returningBook).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.queryBook(ctx, query, args...)
}
