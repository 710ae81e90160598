package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer publishes record-mutation events. Publishing is fire and forget:
// failures are logged and never surfaced to the mutating request.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type RecordEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (p *Producer) SendRecordEvent(ctx context.Context, entity, action, recordID string) {
	event := RecordEvent{
		Entity:     entity,
		Action:     action,
		RecordID:   recordID,
		OccurredAt: time.Now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recordID),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// Nop is wired when no brokers are configured.
type Nop struct{}

func (Nop) SendRecordEvent(context.Context, string, string, string) {}

func (Nop) Close() {}

type infoLogger struct {
	l *slog.Logger
}

func (i *infoLogger) Printf(format string, args ...any) {
	i.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (e *errorLogger) Printf(format string, args ...any) {
	e.l.Error(fmt.Sprintf(format, args...))
}
