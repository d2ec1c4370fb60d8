package memory

import (
	"context"
	"sync"

	"adforge/contexts/ad-production/campaign-studio/ports"
)

// Publisher records published envelopes in memory. Tests use it to assert
// which events the outbox relay shipped.
type Publisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

type PublishedEvent struct {
	Topic    string
	Envelope ports.EventEnvelope
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, PublishedEvent{Topic: topic, Envelope: event})
	return nil
}

func (p *Publisher) Published() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PublishedEvent, len(p.events))
	copy(out, p.events)
	return out
}
