package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/library/internal/handler"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap/zaptest"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	good := model.AuditLog{
		ID: uuid.New(), Action: model.ActionReturn, PerformedBy: "Front Desk",
		EntityType: model.EntityLending, EntityID: uuid.NewString(),
		Details: "Book 'Gamperaliya' returned by 'Nimal Perera'", Timestamp: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
	}
	failing := good
	failing.ID = uuid.New()

	encode := func(e model.AuditLog) []byte {
		b, err := json.Marshal(e)
		require.NoError(t, err)
		return b
	}

	var appended []model.AuditLog
	consumer := handler.NewConsumer(func(_ context.Context, entry model.AuditLog) error {
		if entry.ID == failing.ID {
			return errors.New("db is down")
		}
		appended = append(appended, entry)
		return nil
	}, zaptest.NewLogger(t))

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, consumer.Setup(session))
	select {
	case <-consumer.Ready():
	default:
		t.Fatal("consumer is not ready after setup")
	}
	// a rebalance runs Setup again
	require.NoError(t, consumer.Setup(session))

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 0, Topic: "library.audit", Value: encode(good)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Topic: "library.audit", Value: []byte("{not json")}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Topic: "library.audit", Value: encode(failing)}
	close(claim.messages)

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Equal(t, []model.AuditLog{good}, appended)
	require.Equal(t, []int64{0, 1}, session.marked)
	require.NoError(t, consumer.Cleanup(session))
}

func TestConsumer_StopsOnSessionEnd(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	consumer := handler.NewConsumer(func(context.Context, model.AuditLog) error { return nil }, zaptest.NewLogger(t))
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}
	require.NoError(t, consumer.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
}
