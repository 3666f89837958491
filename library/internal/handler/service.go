package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/turnthepage/library-service/library/internal/model"
	"github.com/turnthepage/library-service/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	Lend(ctx context.Context, req model.LendRequest, actor string) (model.Lending, error)
	ReturnBook(ctx context.Context, id uuid.UUID, actor string) (model.LendingDetails, error)
	History(ctx context.Context, filter model.LendingFilter) ([]model.LendingDetails, error)
	Overdue(ctx context.Context) ([]model.LendingDetails, error)
	OverdueFines(ctx context.Context) ([]model.OverdueFine, error)

	CreateBook(ctx context.Context, req model.CreateBookRequest, actor string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest, actor string) (model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID, actor string) (model.Book, error)
	UploadCover(ctx context.Context, id uuid.UUID, body []byte, actor string) (model.Book, error)

	CreateReader(ctx context.Context, req model.CreateReaderRequest, actor string) (model.Reader, error)
	ListReaders(ctx context.Context, filter model.ReaderFilter) ([]model.Reader, error)
	UpdateReader(ctx context.Context, id uuid.UUID, req model.UpdateReaderRequest, actor string) (model.Reader, error)
	DeactivateReader(ctx context.Context, id uuid.UUID, actor string) (model.Reader, error)

	ListAudit(ctx context.Context) ([]model.AuditLog, error)
	DashboardCounts(ctx context.Context) (model.DashboardCounts, error)
	SendOverdueNotifications(ctx context.Context) (model.NotificationResult, error)
}

var _ LibraryService = (*service.Service)(nil)
