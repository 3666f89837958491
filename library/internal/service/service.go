package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/shopspring/decimal"
	"github.com/turnthepage/library-service/library/internal/model"
	libraryRepo "github.com/turnthepage/library-service/library/internal/repository"
	"github.com/turnthepage/library-service/pkg/circuit_breaker"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// AuditSink persists or forwards audit entries.
type AuditSink interface {
	Write(ctx context.Context, entry model.AuditLog) error
}

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

type CoverStore interface {
	PutCover(ctx context.Context, bookID string, body []byte) (string, error)
}

type LendingPolicy struct {
	LoanDays   int
	FinePerDay decimal.Decimal
}

func DefaultLendingPolicy() LendingPolicy {
	return LendingPolicy{LoanDays: 14, FinePerDay: decimal.NewFromInt(10)}
}

type Service struct {
	log      *zap.Logger
	repo     libraryRepo.Repository
	now      func() time.Time
	sink     AuditSink
	audit    *Recorder
	mailer   Mailer
	covers   CoverStore
	policy   LendingPolicy
	countTTL time.Duration
	counts   *ttlcache.Cache[string, model.DashboardCounts]
	breaker  circuit_breaker.CircuitBreaker
	wg       sync.WaitGroup
}

type Option func(s *Service)

// WithClock replaces time.Now for every time-dependent decision.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithAuditSink(sink AuditSink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

func WithMailer(m Mailer) Option {
	return func(s *Service) {
		s.mailer = m
	}
}

func WithCoverStore(c CoverStore) Option {
	return func(s *Service) {
		s.covers = c
	}
}

func WithLendingPolicy(p LendingPolicy) Option {
	return func(s *Service) {
		if p.LoanDays > 0 {
			s.policy.LoanDays = p.LoanDays
		}
		if p.FinePerDay.IsPositive() {
			s.policy.FinePerDay = p.FinePerDay
		}
	}
}

// WithCountsCache keeps dashboard counts for ttl; zero disables caching.
func WithCountsCache(ttl time.Duration) Option {
	return func(s *Service) {
		s.countTTL = ttl
	}
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		policy: DefaultLendingPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sink == nil {
		s.sink = NewRepositorySink(repo)
	}
	s.audit = NewRecorder(s.sink, s.now, log)
	if s.countTTL > 0 {
		s.counts = ttlcache.New[string, model.DashboardCounts](
			ttlcache.WithTTL[string, model.DashboardCounts](s.countTTL),
			ttlcache.WithDisableTouchOnHit[string, model.DashboardCounts](),
		)
	}
	s.breaker = circuit_breaker.New(10, 30*time.Second, 0.5, 2, circuit_breaker.WithClock(s.now))
	return s
}

// background runs fn in a goroutine tracked by Close and recovers from panics.
func (s *Service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.log.Error("background", zap.Error(fmt.Errorf("%v", err)))
			}
		}()
		fn()
	}()
}

// Close waits for background work such as welcome emails.
func (s *Service) Close() {
	s.wg.Wait()
}
