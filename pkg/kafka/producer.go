// Package kafka publishes conversation events to the analytics pipeline.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"kounhany-ai-go/internal/config"
	"kounhany-ai-go/pkg/log"
)

// ConversationEvent is the payload published after each processed exchange.
type ConversationEvent struct {
	UserID         string `json:"userId"`
	Intent         string `json:"intent"`
	ObdCode        string `json:"obdCode,omitempty"`
	ContentType    string `json:"contentType"`
	ResponseTimeMs int    `json:"responseTimeMs"`
	Timestamp      string `json:"timestamp"`
}

var producer *kafka.Writer

// InitProducer initializes the Kafka producer. It stays nil when no broker
// is configured and event publishing becomes a no-op.
func InitProducer(cfg config.KafkaConfig) {
	if cfg.Brokers == "" {
		log.Info("Kafka not configured, event publishing disabled")
		return
	}
	producer = &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Info("Kafka producer initialized")
}

// PublishConversationEvent sends one event. Publish failures are logged,
// never surfaced to the chat pipeline.
func PublishConversationEvent(event ConversationEvent) {
	if producer == nil {
		return
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().Format(time.RFC3339)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Errorf("failed to marshal conversation event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: payload,
	}); err != nil {
		log.Errorf("failed to publish conversation event: %v", err)
	}
}

// CloseProducer flushes and closes the producer on shutdown.
func CloseProducer() {
	if producer == nil {
		return
	}
	if err := producer.Close(); err != nil {
		log.Errorf("failed to close kafka producer: %v", err)
	}
}
