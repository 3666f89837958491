package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/model"
	"golang.org/x/sync/errgroup"
)

const countsKey = "dashboard"

// DashboardCounts reconciles overdue state and tallies the dashboard counters concurrently.
func (s *Service) DashboardCounts(ctx context.Context) (model.DashboardCounts, error) {
	if s.counts != nil {
		if item := s.counts.Get(countsKey); item != nil {
			return item.Value(), nil
		}
	}

	now := s.now()
	if err := s.reconcile(ctx, now); err != nil {
		return model.DashboardCounts{}, err
	}

	results := make([]int64, len(model.Counters))
	g, gCtx := errgroup.WithContext(ctx)
	for i, c := range model.Counters {
		i, c := i, c
		g.Go(func() error {
			n, err := s.repo.Count(gCtx, c, now)
			if err != nil {
				return errors.Wrap(err, c.String())
			}
			results[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.DashboardCounts{}, err
	}

	var counts model.DashboardCounts
	for i, c := range model.Counters {
		counts.Set(c, results[i])
	}
	if s.counts != nil {
		s.counts.Set(countsKey, counts, s.countTTL)
	}
	return counts, nil
}

func (s *Service) invalidateCounts() {
	if s.counts != nil {
		s.counts.Delete(countsKey)
	}
}
