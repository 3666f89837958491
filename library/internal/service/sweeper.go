package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Reconcile marks every borrowed lending past its due date as overdue.
func (s *Service) Reconcile(ctx context.Context) error {
	return s.reconcile(ctx, s.now())
}

func (s *Service) reconcile(ctx context.Context, now time.Time) error {
	n, err := s.repo.MarkOverdue(ctx, now)
	if err != nil {
		return errors.Wrap(err, "reconcile overdue")
	}
	if n > 0 {
		s.log.Debug("lendings became overdue", zap.Int64("count", n), zap.Time("now", now))
	}
	return nil
}
