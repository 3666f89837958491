package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDaysOverdue(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{name: "not yet due", due: now.Add(time.Hour), want: 0},
		{name: "due now", due: now, want: 0},
		{name: "less than a day", due: now.Add(-23 * time.Hour), want: 0},
		{name: "exactly one day", due: now.Add(-24 * time.Hour), want: 1},
		{name: "three and a half days", due: now.Add(-84 * time.Hour), want: 3},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, test.want, DaysOverdue(test.due, now))
		})
	}
}

func TestComputeFine(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	l := LendingDetails{
		Lending: Lending{
			ID:         uuid.New(),
			DueDate:    now.AddDate(0, 0, -3),
			Status:     StatusOverdue,
			FinePerDay: decimal.NewFromInt(10),
		},
		Book:   BookSummary{Title: "Gamperaliya", Author: "Martin Wickramasinghe", ISBN: "1234567890123"},
		Reader: ReaderSummary{Name: "Kamala", Email: "kamala@example.com"},
	}

	fine := ComputeFine(l, now)
	require.Equal(t, 3, fine.DaysOverdue)
	require.True(t, decimal.NewFromInt(30).Equal(fine.TotalFine))
	require.Equal(t, l.ID, fine.LendingID)
	require.Equal(t, "Gamperaliya", fine.Book.Title)

	l.FinePerDay = decimal.RequireFromString("2.5")
	require.Equal(t, "7.5", ComputeFine(l, now).TotalFine.String())
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-01T10:30:00+05:30")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("next tuesday")
	require.Error(t, err)

	var dt Date
	require.NoError(t, dt.UnmarshalJSON([]byte(`"1999-12-31"`)))
	require.Equal(t, 1999, dt.Year())
	require.Nil(t, (&Date{}).Ptr())
}
