package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"nexusplater/pkg/logger"
	"nexusplater/pkg/model"
)

// KafkaPublisher writes inquiry events to a single topic, keyed by
// mobile number so events for one submitter stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}

	log.Info("Kafka publisher initialized", "topic", topic, "brokers", len(brokers))
	return &KafkaPublisher{writer: writer, log: log}, nil
}

func (p *KafkaPublisher) PublishInquiryReceived(ctx context.Context, inquiry *model.Inquiry) error {
	event := InquiryReceivedEvent{
		ID:          uuid.NewString(),
		InquiryID:   inquiry.ID,
		Mobile:      inquiry.Mobile,
		Email:       inquiry.Email,
		SubmittedAt: inquiry.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal inquiry event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(inquiry.Mobile),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("inquiry.received")},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish inquiry event: %w", err)
	}

	p.log.Debug("Published inquiry-received event",
		"event_id", event.ID,
		"inquiry_id", event.InquiryID,
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
