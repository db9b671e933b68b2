package workforce

import (
	"context"
	"encoding/json"

	"github.com/AndreFCTeles/ElectrexAPI/internal/events"

	"github.com/segmentio/kafka-go"
)

// EventPublisher announces ledger changes to downstream consumers
// (reporting, calendar sync). Publishing is best effort: a broker
// outage never fails the originating request.
type EventPublisher interface {
	PublishWorkerCreated(ctx context.Context, event events.WorkerCreatedEvent) error
	PublishAbsenceChanged(ctx context.Context, event events.AbsenceChangedEvent) error
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishWorkerCreated(context.Context, events.WorkerCreatedEvent) error {
	return nil
}

func (noopEventPublisher) PublishAbsenceChanged(context.Context, events.AbsenceChangedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishWorkerCreated(
	ctx context.Context,
	event events.WorkerCreatedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.WorkerCreatedTopic,
		Key:   []byte(event.WorkerID),
		Value: payload,
	})
}

func (p *kafkaEventPublisher) PublishAbsenceChanged(
	ctx context.Context,
	event events.AbsenceChangedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.AbsenceChangedTopic,
		Key:   []byte(event.WorkerID),
		Value: payload,
	})
}
