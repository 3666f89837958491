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

var readerColumns = []string{
	"id", "member_id", "name", "email", "nic", "phone", "address", "date_of_birth", "is_active",
	"created_by", "created_at", "updated_by", "updated_at", "deleted_by", "deleted_at",
}

var returningReader = "returning " + strings.Join(readerColumns, ", ")

func readerConflict(constraint string) error {
	switch constraint {
	case "readers_member_id_key":
		return errs.ErrMemberIDTaken
	case "readers_email_key":
		return errs.ErrDuplicateEmail
	case "readers_nic_key":
		return errs.ErrDuplicateNIC
	}
	return errs.ErrDuplicate
}

func (r *repository) queryReader(ctx context.Context, query string, args ...any) (model.Reader, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Reader{}, err
	}
	reader, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reader])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reader{}, errs.ErrReaderNotFound
		}
		if constraint, ok := uniqueViolation(err); ok {
			return model.Reader{}, readerConflict(constraint)
		}
		return model.Reader{}, err
	}
	return reader, nil
}

func (r *repository) CreateReader(ctx context.Context, rd model.Reader) (model.Reader, error) {
	query, args, err := qb.Insert(readersTableName).
		Columns("id", "member_id", "name", "email", "nic", "phone", "address", "date_of_birth",
			"is_active", "created_by", "created_at").
		Values(rd.ID, rd.MemberID, rd.Name, rd.Email, rd.NIC, rd.Phone, rd.Address, rd.DateOfBirth,
			true, rd.CreatedBy, rd.CreatedAt).
		Suffix(returningReader).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	reader, err := r.queryReader(ctx, query, args...)
	if err != nil && !errors.Is(err, errs.ErrConflict) && !errors.Is(err, errs.ErrMemberIDTaken) {
		r.log.Error("CreateReader", zap.String("q", query), zap.Error(err))
	}
	return reader, err
}

func (r *repository) GetReaderByMemberID(ctx context.Context, memberID string) (model.Reader, error) {
	query, args, err := qb.Select(readerColumns...).
		From(readersTableName).
		Where(sq.Eq{"member_id": memberID, "is_active": true}).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	return r.queryReader(ctx, query, args...)
}

func (r *repository) ListReaders(ctx context.Context, filter model.ReaderFilter) ([]model.Reader, error) {
	q := qb.Select(readerColumns...).
		From(readersTableName).
		Where(sq.Eq{"is_active": true}).
		OrderBy("name", "created_at")
	if filter.Name != "" {
		q = q.Where(sq.ILike{"name": contains(filter.Name)})
	}
	if filter.Email != "" {
		q = q.Where(sq.ILike{"email": contains(filter.Email)})
	}
	if filter.NIC != "" {
		q = q.Where(sq.ILike{"nic": contains(filter.NIC)})
	}
	if filter.Phone != "" {
		q = q.Where(sq.ILike{"phone": contains(filter.Phone)})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	readers, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Reader])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return readers, nil
}

func (r *repository) UpdateReader(ctx context.Context, id uuid.UUID, req model.UpdateReaderRequest, actor string, at time.Time) (model.Reader, error) {
	q := qb.Update(readersTableName).
		Set("updated_by", actor).
		Set("updated_at", at)
	if req.Name != nil {
		q = q.Set("name", *req.Name)
	}
	if req.Email != nil {
		q = q.Set("email", strings.ToLower(*req.Email))
	}
	if req.NIC != nil {
		q = q.Set("nic", *req.NIC)
	}
	if req.Phone != nil {
		q = q.Set("phone", *req.Phone)
	}
	if req.Address != nil {
		q = q.Set("address", *req.Address)
	}
	if req.DateOfBirth != nil {
		q = q.Set("date_of_birth", req.DateOfBirth.Ptr())
	}
	query, args, err := q.
		Where(sq.Eq{"id": id, "is_active": true}).
		Suffix(returningReader).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	return r.queryReader(ctx, query, args...)
}

func (r *repository) DeactivateReader(ctx context.Context, id uuid.UUID, actor string, at time.Time) (model.Reader, error) {
	query, args, err := qb.Update(readersTableName).
		Set("is_active", false).
		Set("deleted_by", actor).
		Set("deleted_at", at).
		Where(sq.Eq{"id": id, "is_active": true}).
		Suffix(returningReader).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	return r.queryReader(ctx, query, args...)
}
