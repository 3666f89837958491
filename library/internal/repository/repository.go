package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap"
)

type BookRepository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest, actor string, at time.Time) (model.Book, error)
	SetBookCover(ctx context.Context, id uuid.UUID, url, actor string, at time.Time) (model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID, actor string, at time.Time) (model.Book, error)
}

type ReaderRepository interface {
	CreateReader(ctx context.Context, reader model.Reader) (model.Reader, error)
	GetReaderByMemberID(ctx context.Context, memberID string) (model.Reader, error)
	ListReaders(ctx context.Context, filter model.ReaderFilter) ([]model.Reader, error)
	UpdateReader(ctx context.Context, id uuid.UUID, req model.UpdateReaderRequest, actor string, at time.Time) (model.Reader, error)
	DeactivateReader(ctx context.Context, id uuid.UUID, actor string, at time.Time) (model.Reader, error)
}

type LendingRepository interface {
	// CreateLending takes one copy of the book and records the lending atomically.
	CreateLending(ctx context.Context, l model.NewLending) (model.Lending, error)
	// ReturnLending closes the lending and puts the copy back atomically.
	ReturnLending(ctx context.Context, id uuid.UUID, actor string, at time.Time) (model.ReturnResult, error)
	// MarkOverdue moves every borrowed lending due before now to overdue.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	ListLendings(ctx context.Context, filter model.LendingFilter) ([]model.LendingDetails, error)
}

type AuditRepository interface {
	AppendAudit(ctx context.Context, entry model.AuditLog) error
	ListAudit(ctx context.Context) ([]model.AuditLog, error)
}

type CountRepository interface {
	Count(ctx context.Context, c model.Counter, now time.Time) (int64, error)
}

type Repository interface {
	BookRepository
	ReaderRepository
	LendingRepository
	AuditRepository
	CountRepository
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName    = `books`
	readersTableName  = `readers`
	lendingsTableName = `lendings`
	auditTableName    = `audit_logs`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
