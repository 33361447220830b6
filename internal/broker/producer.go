package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

// Producer emits domain events after verification decisions commit. Writes
// are async and best effort; a broker outage never affects the decision.
type Producer struct {
	l *slog.Logger
	w *kafka.Writer
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l: l,
		w: w,
	}
}

type PaymentVerifiedEvent struct {
	Type       string    `json:"type"`
	InvoiceID  uuid.UUID `json:"invoiceId"`
	ReceiptID  uuid.UUID `json:"receiptId"`
	Approved   bool      `json:"approved"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (p *Producer) PaymentVerified(ctx context.Context, invoiceID, receiptID uuid.UUID, approved bool) {
	p.send(ctx, invoiceID.String(), PaymentVerifiedEvent{
		Type:       "payment.verified",
		InvoiceID:  invoiceID,
		ReceiptID:  receiptID,
		Approved:   approved,
		OccurredAt: time.Now(),
	})
}

type StudentEnrolledEvent struct {
	Type       string    `json:"type"`
	StudentID  uuid.UUID `json:"studentId"`
	InvoiceID  uuid.UUID `json:"invoiceId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (p *Producer) StudentEnrolled(ctx context.Context, studentID, invoiceID uuid.UUID) {
	p.send(ctx, studentID.String(), StudentEnrolledEvent{
		Type:       "student.enrolled",
		StudentID:  studentID,
		InvoiceID:  invoiceID,
		OccurredAt: time.Now(),
	})
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write message: %s", err))
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close writer: %s", err))
	}
}

// Noop is wired when Kafka is disabled.
type Noop struct{}

func (Noop) PaymentVerified(context.Context, uuid.UUID, uuid.UUID, bool) {}

func (Noop) StudentEnrolled(context.Context, uuid.UUID, uuid.UUID) {}
