// Package kafka publishes order status changes to a Kafka topic so downstream
// consumers (notifications, analytics) can follow orders without polling.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fueldelivery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StatusChangedMessage is the JSON body of every message. Messages are keyed by
// order id so one order's changes stay on one partition, in order.
type StatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	ManagerID  string    `json:"managerId"`
	AgentID    *string   `json:"agentId,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderStatusPublisher implements ports.OrderEventPublisher on a Kafka topic.
type OrderStatusPublisher struct {
	writer messageWriter
	topic  string
}

// NewOrderStatusPublisher writes to topic on brokers, hashing keys to partitions.
func NewOrderStatusPublisher(brokers []string, topic string) *OrderStatusPublisher {
	return newOrderStatusPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
	}, topic)
}

func newOrderStatusPublisher(writer messageWriter, topic string) *OrderStatusPublisher {
	return &OrderStatusPublisher{writer: writer, topic: topic}
}

func (p *OrderStatusPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(toMessage(event))
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Topic: p.topic,
			Key:   []byte(event.OrderID.String()),
			Value: value,
			Time:  event.OccurredAt,
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *OrderStatusPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(event order.StatusChanged) StatusChangedMessage {
	msg := StatusChangedMessage{
		OrderID:    event.OrderID.String(),
		UserID:     event.UserID.String(),
		ManagerID:  event.ManagerID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.AgentID != nil {
		agentID := event.AgentID.String()
		msg.AgentID = &agentID
	}
	return msg
}
