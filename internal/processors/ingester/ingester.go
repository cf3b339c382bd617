package ingester

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	k "sensor-readings-service/internal/kafka"
	"sensor-readings-service/internal/metrics"
	"sensor-readings-service/internal/readings"
	"sensor-readings-service/internal/worker"
)

var (
	ErrReadMessage    = errors.New("error reading message")
	ErrJSONParse      = errors.New("error parsing JSON")
	ErrInvalidReading = errors.New("invalid reading")
	ErrStoreReading   = errors.New("error storing reading")
)

const source = "kafka"

type readingStore interface {
	InsertReading(ctx context.Context, r readings.Reading) error
}

type Config struct {
	Brokers         []string
	ConsumerGroupID string
	ConsumerTopic   string
	Store           readingStore
}

// Ingester stores readings published to a Kafka topic, applying the same
// rules as the HTTP write path.
type Ingester struct {
	worker *worker.Worker
	reader k.Reader
	store  readingStore
	now    func() time.Time
}

func New(cfg Config) *Ingester {
	ingester := &Ingester{
		reader: k.NewReader(k.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.ConsumerGroupID,
			Topic:   cfg.ConsumerTopic,
		}),
		store: cfg.Store,
		now:   time.Now,
	}

	ingester.worker = worker.New(worker.Config{
		Name:      "ingester-worker",
		Processor: ingester,
	})
	return ingester
}

func (i *Ingester) Run(ctx context.Context) {
	i.worker.Run(ctx)
}

func (i *Ingester) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing ingester resources...")
	i.reader.Close()
}

// Auto-commit active: a rejected record is not retried.
func (i *Ingester) ProcessMessage(ctx context.Context) error {
	const fn = "Ingester:ProcessMessage"
	m, err := i.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	var record k.ReadingRecord
	if err := json.Unmarshal(m.Value, &record); err != nil {
		metrics.ObserveIngest(source, metrics.ResultInvalid)
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}

	reading := record.Reading(i.now().Unix())
	if err := readings.Validate(reading); err != nil {
		slog.InfoContext(ctx, "Invalid reading, skipping",
			"error", err,
			"device_uuid", reading.DeviceUUID,
			"type", reading.Type,
			"value", reading.Value,
		)
		metrics.ObserveIngest(source, metrics.ResultInvalid)
		return fmt.Errorf("%s:%w:%w", fn, ErrInvalidReading, err)
	}

	if err := i.store.InsertReading(ctx, reading); err != nil {
		metrics.ObserveIngest(source, metrics.ResultError)
		return fmt.Errorf("%s:%w:%w", fn, ErrStoreReading, err)
	}
	metrics.ObserveIngest(source, metrics.ResultSuccess)
	slog.DebugContext(ctx, "Stored reading", "device_uuid", reading.DeviceUUID, "type", reading.Type)
	return nil
}
