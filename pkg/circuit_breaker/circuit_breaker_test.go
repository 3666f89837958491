package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/pkg/circuit_breaker"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("smtp: connection refused") }

	clock := &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	cb := circuit_breaker.New(10, 2*time.Second, 0.3, 2, circuit_breaker.WithClock(clock.Now))

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	// three failures out of ten reach the 30% threshold
	for i := 0; i < 3; i++ {
		require.Error(t, cb.Call(failingService))
	}
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	clock.Advance(3 * time.Second)
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	cb := circuit_breaker.New(4, time.Second, 0.5, 3, circuit_breaker.WithClock(clock.Now))

	fail := func() error { return errors.New("boom") }
	require.Error(t, cb.Call(fail))
	require.Error(t, cb.Call(fail))
	require.Equal(t, circuit_breaker.Open, cb.State())

	clock.Advance(2 * time.Second)
	require.Error(t, cb.Call(fail))
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(func() error { return nil }), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
}
