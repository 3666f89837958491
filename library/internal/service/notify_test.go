package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/model"
	mock_service "github.com/turnthepage/library-service/library/internal/service/mocks"
)

func TestService_SendOverdueNotifications(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	mailer := mock_service.NewMockMailer(c)
	f := newFixture(t, 5, WithMailer(mailer))
	ctx := context.Background()
	now := f.clock.Now()

	other, err := f.repo.CreateReader(ctx, model.Reader{
		ID: uuid.New(), MemberID: "Reader-2024-10003", Name: "Sunil", Email: "sunil@example.com",
	})
	require.NoError(t, err)

	res, err := f.svc.SendOverdueNotifications(ctx)
	require.NoError(t, err)
	require.Equal(t, "No overdue lendings found.", res.Message)

	past := now.AddDate(0, 0, -2).Format(time.RFC3339)
	f.lend(t, past)
	f.lend(t, past)
	_, err = f.svc.Lend(ctx, model.LendRequest{MemberID: other.MemberID, ISBN: f.book.ISBN, DueDate: past}, staff)
	require.NoError(t, err)

	mailer.EXPECT().Send("nimal@example.com", overdueTemplate, gomock.Any()).
		DoAndReturn(func(_, _ string, data any) error {
			n := data.(*overdueNotice)
			require.Len(t, n.Books, 2)
			require.Equal(t, "Gamperaliya", n.Books[0].Title)
			return nil
		})
	mailer.EXPECT().Send("sunil@example.com", overdueTemplate, gomock.Any()).Return(errors.New("mailbox full"))

	res, err = f.svc.SendOverdueNotifications(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.ReadersNotified)
	require.Equal(t, 1, res.Failed)
	require.Equal(t, "Notifications sent to 1 reader(s) with overdue books.", res.Message)
}

func Test_groupByReader(t *testing.T) {
	t.Parallel()
	a, b := uuid.New(), uuid.New()
	items := []model.LendingDetails{
		{Lending: model.Lending{ReaderID: a}, Reader: model.ReaderSummary{Name: "A", Email: "a@x"}, Book: model.BookSummary{Title: "1"}},
		{Lending: model.Lending{ReaderID: b}, Reader: model.ReaderSummary{Name: "B", Email: "b@x"}, Book: model.BookSummary{Title: "2"}},
		{Lending: model.Lending{ReaderID: a}, Reader: model.ReaderSummary{Name: "A", Email: "a@x"}, Book: model.BookSummary{Title: "3"}},
		{Lending: model.Lending{ReaderID: uuid.New()}, Reader: model.ReaderSummary{Name: "no email"}},
	}
	notices := groupByReader(items)
	require.Len(t, notices, 2)
	require.Equal(t, "A", notices[0].Name)
	require.Len(t, notices[0].Books, 2)
	require.Equal(t, "3", notices[0].Books[1].Title)
}
