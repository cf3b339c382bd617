package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"sensor-readings-service/internal/db"
	"sensor-readings-service/internal/metrics"
	"sensor-readings-service/internal/query"
	"sensor-readings-service/internal/readings"
	"sensor-readings-service/internal/stats"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type repository interface {
	InsertReading(ctx context.Context, r readings.Reading) error
	ListReadings(ctx context.Context, deviceUUID string, f readings.Filter) ([]readings.Reading, error)
	OrderedReadings(ctx context.Context, deviceUUID string, f readings.Filter) ([]readings.Reading, error)
	Extremum(ctx context.Context, deviceUUID string, f readings.Filter, dir query.Direction) (readings.Reading, error)
	Mean(ctx context.Context, deviceUUID string, f readings.Filter) (float64, error)
	Mode(ctx context.Context, deviceUUID string, f readings.Filter) (int, error)
	Values(ctx context.Context, deviceUUID string, f readings.Filter) ([]int, error)
	Ping(ctx context.Context) error
}

type eventPublisher interface {
	PublishReadingCreated(ctx context.Context, r readings.Reading) error
}

type API struct {
	DB     repository
	events eventPublisher
	now    func() time.Time
}

type Config struct {
	DB repository
	// Events is optional; when set, every stored reading is published.
	Events eventPublisher
	Now    func() time.Time
}

func New(cfg Config) *API {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &API{DB: cfg.DB, events: cfg.Events, now: now}
}

func (a *API) CreateReading(w http.ResponseWriter, r *http.Request) {
	deviceUUID := chi.URLParam(r, "device_uuid")
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		a.fail(w, r, readings.ValidationErrors{readings.SchemaField: {readings.MsgInvalidBody}})
		return
	}

	reading, err := readings.DecodeReading(deviceUUID, body, a.now())
	if err != nil {
		metrics.ObserveIngest("http", metrics.ResultInvalid)
		a.fail(w, r, err)
		return
	}

	if err := a.DB.InsertReading(r.Context(), reading); err != nil {
		metrics.ObserveIngest("http", metrics.ResultError)
		a.fail(w, r, err)
		return
	}
	metrics.ObserveIngest("http", metrics.ResultSuccess)

	if a.events != nil {
		if err := a.events.PublishReadingCreated(r.Context(), reading); err != nil {
			slog.WarnContext(r.Context(), "Failed to publish created reading", "error", err, "device_uuid", deviceUUID)
		}
	}

	writeJSON(w, http.StatusCreated, reading)
}

func (a *API) ListReadings(w http.ResponseWriter, r *http.Request) {
	f, err := readings.ParseListFilter(r.URL.Query())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	rows, err := a.DB.ListReadings(r.Context(), chi.URLParam(r, "device_uuid"), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if rows == nil {
		rows = []readings.Reading{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (a *API) GetMin(w http.ResponseWriter, r *http.Request) {
	a.extremum(w, r, query.Ascending)
}

func (a *API) GetMax(w http.ResponseWriter, r *http.Request) {
	a.extremum(w, r, query.Descending)
}

func (a *API) extremum(w http.ResponseWriter, r *http.Request, dir query.Direction) {
	f, err := readings.ParseValueFilter(r.URL.Query())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	row, err := a.DB.Extremum(r.Context(), chi.URLParam(r, "device_uuid"), f, dir)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *API) GetMedian(w http.ResponseWriter, r *http.Request) {
	f, err := readings.ParseValueFilter(r.URL.Query())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	rows, err := a.DB.OrderedReadings(r.Context(), chi.URLParam(r, "device_uuid"), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	row, err := stats.MedianReading(rows)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (a *API) GetMean(w http.ResponseWriter, r *http.Request) {
	f, err := readings.ParseValueFilter(r.URL.Query())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	mean, err := a.DB.Mean(r.Context(), chi.URLParam(r, "device_uuid"), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ValueResponse{Value: stats.RoundMean(mean)})
}

func (a *API) GetMode(w http.ResponseWriter, r *http.Request) {
	f, err := readings.ParseValueFilter(r.URL.Query())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	mode, err := a.DB.Mode(r.Context(), chi.URLParam(r, "device_uuid"), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ValueResponse{Value: mode})
}

func (a *API) GetQuartiles(w http.ResponseWriter, r *http.Request) {
	f, err := readings.ParseRangeFilter(r.URL.Query())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	values, err := a.DB.Values(r.Context(), chi.URLParam(r, "device_uuid"), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	q, err := stats.ComputeQuartiles(values)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, QuartilesResponse{Quartile1: q.Q1, Quartile3: q.Q3})
}

func (a *API) GetSummary(w http.ResponseWriter, r *http.Request) {
	f, err := readings.ParseValueFilter(r.URL.Query())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	rows, err := a.DB.OrderedReadings(r.Context(), chi.URLParam(r, "device_uuid"), f)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	summary, err := stats.Summarize(rows)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if err := a.DB.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Store ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// fail maps an error onto the response: validation 400, empty result 404,
// anything else 500.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verrs readings.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, verrs)
	case errors.Is(err, db.ErrNotFound), errors.Is(err, stats.ErrEmpty), errors.Is(err, stats.ErrTooFew):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no readings match the given filter"})
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
