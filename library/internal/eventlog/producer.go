package eventlog

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap"
)

// Producer publishes audit entries to Kafka keyed by entity id.
type Producer struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
	wg       sync.WaitGroup
}

func NewProducer(producer sarama.AsyncProducer, topic string, log *zap.Logger) *Producer {
	p := &Producer{
		producer: producer,
		topic:    topic,
		log:      log.Named("eventlog"),
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for perr := range producer.Errors() {
			p.log.Error("audit publish failed", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
		}
	}()
	return p
}

func (p *Producer) Write(ctx context.Context, entry model.AuditLog) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "marshal audit entry")
	}
	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(entry.EntityID),
		Value:     sarama.ByteEncoder(b),
		Timestamp: entry.Timestamp,
	}
	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes buffered messages and waits for the error drain.
func (p *Producer) Close() error {
	err := p.producer.Close()
	p.wg.Wait()
	return err
}
