package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
	mock_service "github.com/turnthepage/library-service/library/internal/service/mocks"
	"github.com/turnthepage/library-service/pkg/storage"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestService_CreateUpdateDeleteBook(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 1)
	ctx := context.Background()

	book, err := f.svc.CreateBook(ctx, model.CreateBookRequest{
		Title: "Viragaya", Author: "Martin Wickramasinghe", CopiesAvailable: intPtr(4),
		PublishedDate: &model.Date{Time: time.Date(1956, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, librarian)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^[1-9]\d{12}$`), book.ISBN)
	require.Equal(t, 4, book.CopiesAvailable)
	require.Equal(t, 4, book.TotalCopies)
	require.Equal(t, librarian, book.CreatedBy)
	require.Equal(t, 1956, book.PublishedDate.Year())

	updated, err := f.svc.UpdateBook(ctx, book.ID, model.UpdateBookRequest{
		Genre: strPtr("Novel"), CopiesAvailable: intPtr(2),
	}, librarian)
	require.NoError(t, err)
	require.Equal(t, "Novel", *updated.Genre)
	require.Equal(t, 2, updated.CopiesAvailable)
	require.Equal(t, 2, updated.TotalCopies)
	require.Equal(t, librarian, *updated.UpdatedBy)

	_, err = f.svc.UpdateBook(ctx, book.ID, model.UpdateBookRequest{}, librarian)
	require.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = f.svc.DeleteBook(ctx, book.ID, librarian)
	require.NoError(t, err)
	_, err = f.svc.DeleteBook(ctx, book.ID, librarian)
	require.ErrorIs(t, err, errs.ErrBookNotFound)
	_, err = f.svc.UpdateBook(ctx, book.ID, model.UpdateBookRequest{Title: strPtr("x")}, librarian)
	require.ErrorIs(t, err, errs.ErrBookNotFound)

	// a deleted book cannot be lent
	_, err = f.svc.Lend(ctx, model.LendRequest{MemberID: f.reader.MemberID, ISBN: book.ISBN}, staff)
	require.ErrorIs(t, err, errs.ErrBookNotFound)

	logs, err := f.svc.ListAudit(ctx)
	require.NoError(t, err)
	actions := make([]model.Action, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	require.ElementsMatch(t, []model.Action{model.ActionCreate, model.ActionUpdate, model.ActionDelete}, actions)
}

func TestService_CreateBookDefaultsToOneCopy(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 1)
	book, err := f.svc.CreateBook(context.Background(), model.CreateBookRequest{Title: "Kaliyugaya", Author: "Martin Wickramasinghe"}, librarian)
	require.NoError(t, err)
	require.Equal(t, 1, book.CopiesAvailable)
	require.Equal(t, 1, book.TotalCopies)
}

func TestService_UploadCover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type mockBehavior func(m *mock_service.MockCoverStore, bookID string)
	tests := []struct {
		name         string
		bookID       func(f *fixture) uuid.UUID
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:   "ok",
			bookID: func(f *fixture) uuid.UUID { return f.book.ID },
			mockBehavior: func(m *mock_service.MockCoverStore, bookID string) {
				m.EXPECT().PutCover(gomock.Any(), bookID, []byte("img")).
					Return("https://covers.s3.us-east-1.amazonaws.com/bookcovers/x.png", nil)
			},
		},
		{
			name:   "unsupported image",
			bookID: func(f *fixture) uuid.UUID { return f.book.ID },
			mockBehavior: func(m *mock_service.MockCoverStore, bookID string) {
				m.EXPECT().PutCover(gomock.Any(), bookID, []byte("img")).Return("", storage.ErrUnsupportedType)
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:         "unknown book",
			bookID:       func(*fixture) uuid.UUID { return uuid.New() },
			mockBehavior: func(*mock_service.MockCoverStore, string) {},
			wantErr:      errs.ErrBookNotFound,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			covers := mock_service.NewMockCoverStore(c)
			f := newFixture(t, 1, WithCoverStore(covers))
			id := test.bookID(f)
			test.mockBehavior(covers, id.String())

			book, err := f.svc.UploadCover(ctx, id, []byte("img"), librarian)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "https://covers.s3.us-east-1.amazonaws.com/bookcovers/x.png", *book.CoverURL)
		})
	}
}
