// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

// ChannelInterface is the subset of *amqp.Channel the publisher uses.
type ChannelInterface interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher sends each event type to a durable queue of the same name.
type RabbitMQPublisher struct {
	conn *amqp.Connection
	ch   ChannelInterface

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, e Event) error {
	ctx, span := p.tracer.Start(ctx, "events.RabbitMQPublisher.Publish")
	defer span.End()

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt.UTC(),
		Type:         string(e.Type),
		MessageId:    e.InvitationID,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", string(e.Type), false, false, msg); err != nil {
		_ = p.monitor.SetDependencyAvailability(map[string]string{"component": "rabbitmq"}, 0)
		p.logger.Errorf("failed to publish %s: %v", e.Type, err)
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}

	_ = p.monitor.SetDependencyAvailability(map[string]string{"component": "rabbitmq"}, 1)

	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}

	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}

func declareQueues(ch ChannelInterface) error {
	for _, t := range []EventType{InvitationAccepted, InvitationRejected} {
		if _, err := ch.QueueDeclare(string(t), true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", t, err)
		}
	}

	return nil
}

// NewRabbitMQPublisherWithChannel wraps an already open channel.
func NewRabbitMQPublisherWithChannel(ch ChannelInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RabbitMQPublisher, error) {
	if err := declareQueues(ch); err != nil {
		return nil, err
	}

	return &RabbitMQPublisher{
		ch:      ch,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func NewRabbitMQPublisher(url string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	p, err := NewRabbitMQPublisherWithChannel(ch, tracer, monitor, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	p.conn = conn

	return p, nil
}
