package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/simaogato/walletledger-backend/internal/adapter/events"
	"github.com/simaogato/walletledger-backend/internal/domain"
)

// messageWriter is the part of *kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher sends domain events to Kafka, one topic per event kind
type Publisher struct {
	writer messageWriter
}

var _ domain.EventPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher writing to the given brokers.
// The topic is chosen per message.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish implements domain.EventPublisher
func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := events.Encode(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Value: data}); err != nil {
		return fmt.Errorf("write kafka message to %s: %w", topic, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}
