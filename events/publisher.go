// Package events publishes order lifecycle events to Kafka. When no
// brokers are configured the publisher degrades to a no-op so the store
// runs without a cluster.
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/threadcraft/boutique-api/models"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type       string             `json:"type"`
	OrderID    string             `json:"order_id"`
	Status     models.OrderStatus `json:"status"`
	Amount     float64            `json:"amount"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// Publisher pushes order events to a topic.
type Publisher interface {
	PublishOrderEvent(ev OrderEvent) error
	Close() error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a SyncProducer. An empty broker list returns
// the no-op publisher.
func NewKafkaPublisher(brokers []string, topic string) (Publisher, error) {
	if len(brokers) == 0 {
		log.Println("Kafka brokers not configured, order events disabled")
		return NopPublisher{}, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}
	log.Println("Kafka producer connected")
	return &kafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *kafkaPublisher) PublishOrderEvent(ev OrderEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.OrderID),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Printf("failed to publish %s for order %s: %v", ev.Type, ev.OrderID, err)
		return err
	}
	log.Printf("published %s for order %s (partition %d, offset %d)", ev.Type, ev.OrderID, partition, offset)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(OrderEvent) error { return nil }
func (NopPublisher) Close() error                       { return nil }
