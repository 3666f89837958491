package repository

import (
	"context"
	"fmt"
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

var lendingColumns = []string{
	"id", "book_id", "reader_id", "borrow_date", "due_date", "return_date", "status", "fine_per_day",
	"created_by", "updated_by", "updated_at", "deleted_by", "deleted_at",
}

var returningLending = "returning " + strings.Join(lendingColumns, ", ")

func (r *repository) CreateLending(ctx context.Context, nl model.NewLending) (model.Lending, error) {
	var lending model.Lending
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
update books
    set copies_available = copies_available - 1
where id = $1 and not is_deleted and copies_available > 0`, nl.BookID)
		if err != nil {
			return errors.Wrap(err, "take copy")
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx,
				`select exists(select 1 from books where id = $1 and not is_deleted)`, nl.BookID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return errs.ErrBookNotFound
			}
			return errs.ErrNoCopiesAvailable
		}

		query, args, err := qb.Insert(lendingsTableName).
			Columns("id", "book_id", "reader_id", "borrow_date", "due_date", "status", "fine_per_day", "created_by").
			Values(uuid.New(), nl.BookID, nl.ReaderID, nl.BorrowDate, nl.DueDate, model.StatusBorrowed,
				nl.FinePerDay.String(), nl.CreatedBy).
			Suffix(returningLending).
			ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		lending, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lending])
		if err != nil {
			r.log.Error("CreateLending", zap.String("q", query), zap.Error(err))
			return errors.Wrap(err, "insert lending")
		}
		return nil
	})
	if err != nil {
		return model.Lending{}, err
	}
	return lending, nil
}

func (r *repository) ReturnLending(ctx context.Context, id uuid.UUID, actor string, at time.Time) (model.ReturnResult, error) {
	var res model.ReturnResult
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		q := fmt.Sprintf(`update %s
	set status = $4, return_date = $2, updated_by = $3, updated_at = $2
where id = $1 and status <> $4
%s`, lendingsTableName, returningLending)
		rows, err := tx.Query(ctx, q, id, at, actor, model.StatusReturned)
		if err != nil {
			return err
		}
		lending, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Lending])
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return errors.Wrap(err, "close lending")
			}
			var status model.Status
			if err := tx.QueryRow(ctx, `select status from lendings where id = $1`, id).Scan(&status); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return errs.ErrLendingNotFound
				}
				return err
			}
			return errs.ErrAlreadyReturned
		}

		var available, total int
		if err := tx.QueryRow(ctx,
			`select copies_available, total_copies from books where id = $1 for update`, lending.BookID).
			Scan(&available, &total); err != nil {
			return errors.Wrap(err, "lock book")
		}
		if available < total {
			if _, err := tx.Exec(ctx,
				`update books set copies_available = copies_available + 1 where id = $1`, lending.BookID); err != nil {
				return errors.Wrap(err, "put copy back")
			}
		} else {
			res.Clamped = true
		}

		res.Lending = model.LendingDetails{Lending: lending}
		return tx.QueryRow(ctx, `
select b.title, b.author, b.isbn, r.name, r.email
from books b, readers r
where b.id = $1 and r.id = $2`, lending.BookID, lending.ReaderID).
			Scan(&res.Lending.Book.Title, &res.Lending.Book.Author, &res.Lending.Book.ISBN,
				&res.Lending.Reader.Name, &res.Lending.Reader.Email)
	})
	if err != nil {
		return model.ReturnResult{}, err
	}
	return res, nil
}

func (r *repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := qb.Update(lendingsTableName).
		Set("status", model.StatusOverdue).
		Where(sq.Eq{"status": model.StatusBorrowed}).
		Where(sq.Lt{"due_date": now}).
		ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "mark overdue")
	}
	return tag.RowsAffected(), nil
}

func (r *repository) ListLendings(ctx context.Context, filter model.LendingFilter) ([]model.LendingDetails, error) {
	cols := append(prefixed("l", lendingColumns), "b.title", "b.author", "b.isbn", "r.name", "r.email")
	q := qb.Select(cols...).
		From(lendingsTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id").
		Join(readersTableName + " r on r.id = l.reader_id").
		OrderBy("l.borrow_date")
	if filter.BookID != nil {
		q = q.Where(sq.Eq{"l.book_id": *filter.BookID})
	}
	if filter.ReaderID != nil {
		q = q.Where(sq.Eq{"l.reader_id": *filter.ReaderID})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"l.status": filter.Status})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.LendingDetails, error) {
		var d model.LendingDetails
		err := row.Scan(&d.ID, &d.BookID, &d.ReaderID, &d.BorrowDate, &d.DueDate, &d.ReturnDate, &d.Status,
			&d.FinePerDay, &d.CreatedBy, &d.UpdatedBy, &d.UpdatedAt, &d.DeletedBy, &d.DeletedAt,
			&d.Book.Title, &d.Book.Author, &d.Book.ISBN, &d.Reader.Name, &d.Reader.Email)
		return d, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}
