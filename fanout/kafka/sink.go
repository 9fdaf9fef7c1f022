package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Envelope is the record written for every published event
type Envelope struct {
	AppID       int64     `json:"app_id"`
	Event       string    `json:"event"`
	Payload     any       `json:"payload"`
	PublishedAt time.Time `json:"published_at"`
}

// messageWriter is the part of *kafka.Writer the sink needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Sink is an audit trail of fanout events on a Kafka topic
// Writes are asynchronous; delivery failures are logged, never returned
type Sink struct {
	writer messageWriter
	logger zerolog.Logger
	now    func() time.Time
}

func NewSink(brokers []string, topic string, logger zerolog.Logger) *Sink {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchTimeout: 10 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn().Err(err).Int("messages", len(messages)).Str("topic", topic).Msg("writing events to kafka")
			}
		},
	}
	return newSink(writer, logger)
}

func newSink(writer messageWriter, logger zerolog.Logger) *Sink {
	return &Sink{writer: writer, logger: logger, now: time.Now}
}

// Publish keys records by application so one application's events stay ordered
func (s *Sink) Publish(appID int64, event string, payload any) {
	value, err := json.Marshal(Envelope{
		AppID:       appID,
		Event:       event,
		Payload:     payload,
		PublishedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("event", event).Msg("encoding kafka event")
		return
	}

	err = s.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatInt(appID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event)},
		},
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("event", event).Msg("queueing kafka event")
	}
}

// Close flushes pending writes
func (s *Sink) Close() error {
	return s.writer.Close()
}
