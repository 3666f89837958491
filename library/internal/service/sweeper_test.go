package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/model"
	"github.com/turnthepage/library-service/library/internal/repository/memory"
	"go.uber.org/zap/zaptest"
)

var errStorageDown = errors.New("storage down")

// brokenSweep fails every overdue transition and serves everything else from memory.
type brokenSweep struct {
	*memory.Repository
}

func (brokenSweep) MarkOverdue(context.Context, time.Time) (int64, error) {
	return 0, errStorageDown
}

func TestService_ReadsAbortWhenReconcileFails(t *testing.T) {
	t.Parallel()
	clock := newClock()
	svc := NewService(brokenSweep{memory.New()}, zaptest.NewLogger(t), WithClock(clock.Now), WithCountsCache(time.Minute))
	t.Cleanup(svc.Close)
	ctx := context.Background()

	reads := map[string]func() error{
		"history": func() error {
			_, err := svc.History(ctx, model.LendingFilter{})
			return err
		},
		"overdue": func() error {
			_, err := svc.Overdue(ctx)
			return err
		},
		"fines": func() error {
			_, err := svc.OverdueFines(ctx)
			return err
		},
		"dashboard": func() error {
			_, err := svc.DashboardCounts(ctx)
			return err
		},
	}
	for name, read := range reads {
		err := read()
		require.ErrorIs(t, err, errStorageDown, name)
		require.Contains(t, err.Error(), "reconcile overdue", name)
	}

	// a failed dashboard read is not cached
	_, err := svc.DashboardCounts(ctx)
	require.ErrorIs(t, err, errStorageDown)
}
