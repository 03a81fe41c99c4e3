package telemetry

import (
	"context"
	"fmt"

	"biometric-terminal/internal/infra/mqtt"
	"biometric-terminal/internal/terminal/usecases"
)

const _eventsTopicSuffix = "events"

func EventsTopic(prefix, deviceID string) string {
	return mqtt.Topic(prefix, deviceID, _eventsTopicSuffix)
}

func NewEventPublisher(client mqtt.Client, codec Codec, prefix, deviceID string) *EventPublisher {
	return &EventPublisher{
		client: client,
		codec:  codec,
		topic:  EventsTopic(prefix, deviceID),
	}
}

var _ usecases.EventPublisher = (*EventPublisher)(nil)

// EventPublisher sends controller telemetry to the device's events topic.
type EventPublisher struct {
	client mqtt.Client
	codec  Codec
	topic  string
}

func (p *EventPublisher) Topic() string {
	return p.topic
}

func (p *EventPublisher) Publish(_ context.Context, event usecases.TerminalEvent) error {
	payload, err := p.codec.Encode(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Type, err)
	}
	if err := p.client.Publish(p.topic, payload); err != nil {
		return fmt.Errorf("publishing %s event: %w", event.Type, err)
	}
	return nil
}
