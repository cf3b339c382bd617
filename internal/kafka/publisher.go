package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sensor-readings-service/internal/readings"

	kafkago "github.com/segmentio/kafka-go"
)

var (
	ErrMarshalRecord = errors.New("error marshalling record")
	ErrWriteMessage  = errors.New("error writing message")
)

// Publisher announces stored readings, keyed by device so a device's
// readings stay on one partition.
type Publisher struct {
	writer Writer
}

func NewPublisher(w Writer) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) PublishReadingCreated(ctx context.Context, r readings.Reading) error {
	const fn = "Publisher:PublishReadingCreated"
	out, err := json.Marshal(RecordFromReading(r))
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshalRecord, err)
	}
	err = p.writer.WriteMessages(ctx, kafkago.Message{Key: []byte(r.DeviceUUID), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
