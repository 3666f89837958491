package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
)

func Test_contains(t *testing.T) {
	t.Parallel()
	require.Equal(t, "%tolkien%", contains("tolkien"))
	require.Equal(t, `%100\%\_off\\%`, contains(`100%_off\`))
}

func Test_countQuery(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	tests := []struct {
		counter  model.Counter
		wantSQL  string
		wantArgs int
	}{
		{model.CountBooks, "SELECT count(*) FROM books WHERE is_deleted = $1", 1},
		{model.CountReaders, "SELECT count(*) FROM readers WHERE is_active = $1", 1},
		{model.CountLentOut, "SELECT count(*) FROM lendings WHERE return_date IS NULL AND status = $1", 1},
		{model.CountOverdue, "SELECT count(*) FROM lendings WHERE return_date IS NULL AND status = $1 AND due_date < $2", 2},
		{model.CountDueToday, "SELECT count(*) FROM lendings WHERE return_date IS NULL AND due_date >= $1 AND due_date < $2", 2},
	}
	for _, test := range tests {
		q, err := countQuery(test.counter, now)
		require.NoError(t, err)
		sql, args, err := q.ToSql()
		require.NoError(t, err)
		require.Equal(t, test.wantSQL, sql, test.counter.String())
		require.Len(t, args, test.wantArgs)
	}

	_, err := countQuery(model.Counter(42), now)
	require.Error(t, err)
}

func Test_readerConflict(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, readerConflict("readers_member_id_key"), errs.ErrMemberIDTaken)
	require.ErrorIs(t, readerConflict("readers_email_key"), errs.ErrDuplicateEmail)
	require.ErrorIs(t, readerConflict("readers_nic_key"), errs.ErrDuplicateNIC)
	require.ErrorIs(t, readerConflict("other"), errs.ErrConflict)
}
