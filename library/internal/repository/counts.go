package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/model"
)

func countQuery(c model.Counter, now time.Time) (sq.SelectBuilder, error) {
	q := qb.Select("count(*)")
	switch c {
	case model.CountBooks:
		return q.From(booksTableName).Where(sq.Eq{"is_deleted": false}), nil
	case model.CountReaders:
		return q.From(readersTableName).Where(sq.Eq{"is_active": true}), nil
	case model.CountLentOut:
		return q.From(lendingsTableName).
			Where(sq.Eq{"status": model.StatusBorrowed, "return_date": nil}), nil
	case model.CountOverdue:
		return q.From(lendingsTableName).
			Where(sq.Eq{"status": model.StatusOverdue, "return_date": nil}).
			Where(sq.Lt{"due_date": now}), nil
	case model.CountDueToday:
		start, end := model.DayBounds(now)
		return q.From(lendingsTableName).
			Where(sq.Eq{"return_date": nil}).
			Where(sq.GtOrEq{"due_date": start}).
			Where(sq.Lt{"due_date": end}), nil
	}
	return q, errors.Errorf("unknown counter %d", c)
}

func (r *repository) Count(ctx context.Context, c model.Counter, now time.Time) (int64, error) {
	q, err := countQuery(c, now)
	if err != nil {
		return 0, err
	}
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, errors.Wrapf(err, "count %s", c)
	}
	return n, nil
}
