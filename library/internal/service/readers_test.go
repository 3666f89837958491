package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
	mock_service "github.com/turnthepage/library-service/library/internal/service/mocks"
)

func TestService_CreateReader(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	mailer := mock_service.NewMockMailer(c)
	f := newFixture(t, 1, WithMailer(mailer))
	ctx := context.Background()

	done := make(chan struct{})
	mailer.EXPECT().Send("kamala@example.com", welcomeTemplate, gomock.Any()).
		DoAndReturn(func(_, _ string, data any) error {
			defer close(done)
			r, ok := data.(model.Reader)
			require.True(t, ok)
			require.Equal(t, "Kamala Silva", r.Name)
			return errors.New("smtp down")
		})

	reader, err := f.svc.CreateReader(ctx, model.CreateReaderRequest{
		Name: " Kamala Silva ", Email: "Kamala@Example.com", NIC: strPtr("199012345678"),
	}, staff)
	require.NoError(t, err, "welcome email failures never fail creation")
	require.Regexp(t, regexp.MustCompile(`^Reader-2024-\d{5}$`), reader.MemberID)
	require.Equal(t, "kamala@example.com", reader.Email)
	require.True(t, reader.IsActive)
	<-done

	_, err = f.svc.CreateReader(ctx, model.CreateReaderRequest{Name: "Someone Else", Email: "kamala@example.com"}, staff)
	require.ErrorIs(t, err, errs.ErrDuplicateEmail)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestService_UpdateDeactivateReader(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 1)
	ctx := context.Background()

	updated, err := f.svc.UpdateReader(ctx, f.reader.ID, model.UpdateReaderRequest{Phone: strPtr("0771234567")}, staff)
	require.NoError(t, err)
	require.Equal(t, "0771234567", *updated.Phone)

	found, err := f.svc.ListReaders(ctx, model.ReaderFilter{Phone: "077"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = f.svc.DeactivateReader(ctx, f.reader.ID, librarian)
	require.NoError(t, err)

	found, err = f.svc.ListReaders(ctx, model.ReaderFilter{})
	require.NoError(t, err)
	require.Empty(t, found)

	_, err = f.svc.Lend(ctx, model.LendRequest{MemberID: f.reader.MemberID, ISBN: f.book.ISBN}, staff)
	require.ErrorIs(t, err, errs.ErrReaderNotFound)
}

func Test_generateMemberID(t *testing.T) {
	t.Parallel()
	re := regexp.MustCompile(`^Reader-2031-\d{5}$`)
	for i := 0; i < 100; i++ {
		require.Regexp(t, re, generateMemberID(2031))
	}
}
