package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"blog-backend/internal/logger"
)

// producer is the part of *kafka.Producer the bus uses.
type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// KafkaEventBus publishes events with a confluent-kafka-go producer. Publish
// only enqueues; delivery reports are drained in the background.
type KafkaEventBus struct {
	producer producer
	brokers  string
}

func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  brokers,
		"acks":               "all",
		"retries":            5,
		"message.timeout.ms": 30000,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	go logDeliveryReports(p.Events())

	return &KafkaEventBus{producer: p, brokers: brokers}, nil
}

// logDeliveryReports logs failed deliveries and client errors until events is closed.
func logDeliveryReports(events <-chan kafka.Event) {
	for e := range events {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error == nil {
				continue
			}
			topic := ""
			if ev.TopicPartition.Topic != nil {
				topic = *ev.TopicPartition.Topic
			}
			logger.ErrorWithFields("kafka delivery failed", logger.Fields{
				"topic":    topic,
				"event_id": string(ev.Key),
				"error":    ev.TopicPartition.Error.Error(),
			})
		case kafka.Error:
			logger.ErrorWithFields("kafka error", logger.Fields{"error": ev.Error()})
		}
	}
}

// Close flushes outstanding messages for up to five seconds and closes the producer.
func (k *KafkaEventBus) Close() {
	if k.producer == nil {
		return
	}
	if remaining := k.producer.Flush(5000); remaining > 0 {
		logger.Log.Warnf("%d kafka messages still queued after flush", remaining)
	}
	k.producer.Close()
	logger.Log.Info("kafka producer closed")
}

// Publish enqueues event on topic keyed by its id. It does not wait for the
// broker; an error means the message was never queued.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
		Headers:        []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	}, nil)
	if err != nil {
		return fmt.Errorf("produce message: %w", err)
	}
	return nil
}
