// Package service holds the outbound integrations the handlers call into.
// The queue publisher pushes domain events to RabbitMQ; errors are logged
// and returned so callers can ignore failures without interrupting the
// main request flow.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/odlaor/paradise-resort/internal/queue"
)

// QueuePublisher publishes booking events to RabbitMQ.  Each publish dials
// a fresh connection; booking volume is low enough that connection churn
// is cheaper than keeping a channel healthy across broker restarts.
type QueuePublisher struct {
	url string
}

// NewQueuePublisher returns a publisher for the given broker URL.  Pass an
// empty URL to resolve it from the environment.
func NewQueuePublisher(url string) *QueuePublisher {
	if url == "" {
		url = q.BrokerURL()
	}
	return &QueuePublisher{url: url}
}

// PublishBookingCreated sends a BookingCreatedEvent to the booking.created
// queue.  Messages are marked persistent so they survive broker restarts.
func (p *QueuePublisher) PublishBookingCreated(ctx context.Context, ev q.BookingCreatedEvent) error {
	return p.publish(ctx, q.BookingCreatedQueue, ev)
}

// PublishStatusChanged sends a BookingStatusChangedEvent to the
// booking.status queue.
func (p *QueuePublisher) PublishStatusChanged(ctx context.Context, ev q.BookingStatusChangedEvent) error {
	return p.publish(ctx, q.BookingStatusQueue, ev)
}

func (p *QueuePublisher) publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publisher and consumer can start in any order.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
