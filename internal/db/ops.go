package db

import (
	"context"
	"errors"
	"fmt"

	"sensor-readings-service/internal/query"
	"sensor-readings-service/internal/readings"
)

var (
	ErrInsertFailed = errors.New("insert operation failed")
	ErrSelectFailed = errors.New("select operation failed")
	ErrNotFound     = errors.New("no readings match the filter")
)

func (db *DB) InsertReading(ctx context.Context, r readings.Reading) error {
	const fn = "DB:InsertReading"
	if err := db.conn.exec(ctx, query.Insert(db.dialect, r)); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) ListReadings(ctx context.Context, deviceUUID string, f readings.Filter) ([]readings.Reading, error) {
	const fn = "DB:ListReadings"
	rows := []readings.Reading{}
	if err := db.conn.selectAll(ctx, &rows, query.List(db.dialect, deviceUUID, f)); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return rows, nil
}

// OrderedReadings returns the matching rows sorted by value, then date_created.
func (db *DB) OrderedReadings(ctx context.Context, deviceUUID string, f readings.Filter) ([]readings.Reading, error) {
	const fn = "DB:OrderedReadings"
	rows := []readings.Reading{}
	if err := db.conn.selectAll(ctx, &rows, query.Ordered(db.dialect, deviceUUID, f)); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return rows, nil
}

func (db *DB) Extremum(ctx context.Context, deviceUUID string, f readings.Filter, dir query.Direction) (readings.Reading, error) {
	const fn = "DB:Extremum"
	var row readings.Reading
	err := db.conn.getOne(ctx, &row, query.Extremum(db.dialect, deviceUUID, f, dir))
	if errors.Is(err, errNoRows) {
		return readings.Reading{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	if err != nil {
		return readings.Reading{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return row, nil
}

// Mean returns the unrounded average value.
func (db *DB) Mean(ctx context.Context, deviceUUID string, f readings.Filter) (float64, error) {
	const fn = "DB:Mean"
	var row meanRow
	if err := db.conn.getOne(ctx, &row, query.Mean(db.dialect, deviceUUID, f)); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	if row.Count == 0 || !row.MeanValue.Valid {
		return 0, fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return row.MeanValue.Float64, nil
}

func (db *DB) Mode(ctx context.Context, deviceUUID string, f readings.Filter) (int, error) {
	const fn = "DB:Mode"
	var row modeRow
	err := db.conn.getOne(ctx, &row, query.Mode(db.dialect, deviceUUID, f))
	if errors.Is(err, errNoRows) {
		return 0, fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return row.ModeValue, nil
}

// Values returns the unsorted value column; type, start and end must be set.
func (db *DB) Values(ctx context.Context, deviceUUID string, f readings.Filter) ([]int, error) {
	const fn = "DB:Values"
	q, err := query.Values(db.dialect, deviceUUID, f)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	values := []int{}
	if err := db.conn.selectAll(ctx, &values, q); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return values, nil
}
