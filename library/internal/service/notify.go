package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	overdueTemplate = "overdue_notice.tmpl"
	maxParallelMail = 4
)

type overdueBook struct {
	Title   string
	DueDate time.Time
}

type overdueNotice struct {
	Name  string
	Email string
	Books []overdueBook
}

// groupByReader keeps the first-seen order of readers.
func groupByReader(items []model.LendingDetails) []*overdueNotice {
	index := make(map[uuid.UUID]*overdueNotice)
	var notices []*overdueNotice
	for _, l := range items {
		if l.Reader.Email == "" {
			continue
		}
		n, ok := index[l.ReaderID]
		if !ok {
			n = &overdueNotice{Name: l.Reader.Name, Email: l.Reader.Email}
			index[l.ReaderID] = n
			notices = append(notices, n)
		}
		n.Books = append(n.Books, overdueBook{Title: l.Book.Title, DueDate: l.DueDate})
	}
	return notices
}

// SendOverdueNotifications emails every reader holding overdue books, one email per reader.
func (s *Service) SendOverdueNotifications(ctx context.Context) (model.NotificationResult, error) {
	if s.mailer == nil {
		return model.NotificationResult{}, errors.New("mailer is not configured")
	}
	items, err := s.Overdue(ctx)
	if err != nil {
		return model.NotificationResult{}, err
	}
	notices := groupByReader(items)
	if len(notices) == 0 {
		return model.NotificationResult{Message: "No overdue lendings found."}, nil
	}

	var sent, failed int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelMail)
	for _, n := range notices {
		n := n
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			err := s.breaker.Call(func() error {
				return s.mailer.Send(n.Email, overdueTemplate, n)
			})
			if err != nil {
				atomic.AddInt64(&failed, 1)
				s.log.Warn("overdue notice", zap.String("email", n.Email), zap.Error(err))
				return nil
			}
			atomic.AddInt64(&sent, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.NotificationResult{}, err
	}

	return model.NotificationResult{
		Message:         fmt.Sprintf("Notifications sent to %d reader(s) with overdue books.", sent),
		ReadersNotified: int(sent),
		Failed:          int(failed),
	}, nil
}
