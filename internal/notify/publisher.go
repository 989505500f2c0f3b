// Package notify publishes inquiry lifecycle events for downstream
// consumers (back-office alerting). Publishing is best-effort: the
// submission flow never fails because an event could not be delivered.
package notify

import (
	"context"
	"time"

	"nexusplater/pkg/logger"
	"nexusplater/pkg/model"
)

// InquiryReceivedEvent is the JSON payload published for every accepted
// submission. The message itself is not included; consumers fetch the
// document by ID if they need it.
type InquiryReceivedEvent struct {
	ID          string    `json:"id"`
	InquiryID   string    `json:"inquiry_id"`
	Mobile      string    `json:"mobile"`
	Email       string    `json:"email"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type Publisher interface {
	PublishInquiryReceived(ctx context.Context, inquiry *model.Inquiry) error
	Close() error
}

// LogPublisher records events to the service log only. Used when no
// broker is configured (local development, single-node deployments).
type LogPublisher struct {
	log *logger.Logger
}

func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishInquiryReceived(_ context.Context, inquiry *model.Inquiry) error {
	p.log.Info("Inquiry received (event logging only, no broker configured)",
		"inquiry_id", inquiry.ID,
		"mobile", inquiry.Mobile,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
