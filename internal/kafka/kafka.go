package kafka

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

type Reader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type ReaderConfig struct {
	Brokers []string
	GroupID string
	Topic   string
}

// NewReader builds a consumer-group reader with auto-commit.
func NewReader(cfg ReaderConfig) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
	})
}

// writerBatchTimeout bounds how long a synchronous write waits for a batch
// to fill. kafka-go defaults to one second.
const writerBatchTimeout = 10 * time.Millisecond

type WriterConfig struct {
	Brokers []string
	Topic   string
}

func NewWriter(cfg WriterConfig) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: writerBatchTimeout,
	}
}
