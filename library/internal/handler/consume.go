package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap"
)

type appendAudit func(ctx context.Context, entry model.AuditLog) error

// Consumer persists audit entries read from the audit topic.
type Consumer struct {
	appendAuditHandler appendAudit
	log                *zap.Logger
	ready              chan bool
}

func NewConsumer(appendAudit appendAudit, log *zap.Logger) *Consumer {
	return &Consumer{
		appendAuditHandler: appendAudit,
		log:                log.Named("consumer"),
		ready:              make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var entry model.AuditLog
			if err := json.Unmarshal(message.Value, &entry); err != nil {
				consumer.log.Error("malformed audit entry", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			// unmarked messages are redelivered; append ignores duplicate ids
			if err := consumer.appendAuditHandler(session.Context(), entry); err != nil {
				consumer.log.Error("consumer.appendAuditHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("entityId", entry.EntityID), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
