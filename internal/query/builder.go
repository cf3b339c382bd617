// Package query composes parameterized SQL for the readings table. Every
// caller-supplied value is bound as a placeholder argument, never spliced
// into the statement text.
package query

import (
	"errors"
	"strconv"
	"strings"

	"sensor-readings-service/internal/readings"
)

var ErrIncompleteRange = errors.New("type, start and end are all required")

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

const (
	table   = "readings"
	columns = "device_uuid, type, value, date_created"
)

// Query is a statement plus its bound arguments, in placeholder order.
type Query struct {
	SQL  string
	Args []any
}

// Predicate is a WHERE clause body and its arguments.
type Predicate struct {
	Clause string
	Args   []any
}

// Where builds the filter predicate. Arguments follow
// [device_uuid, type?, start?, end?]; absent filters contribute neither a
// clause nor an argument.
func Where(d Dialect, deviceUUID string, f readings.Filter) Predicate {
	var (
		clauses []string
		args    []any
	)
	bind := func(expr string, v any) {
		args = append(args, v)
		clauses = append(clauses, expr+" "+d.placeholder(len(args)))
	}

	bind("device_uuid =", deviceUUID)
	if t, ok := f.Type.Get(); ok {
		bind("type =", string(t))
	}
	if start, ok := f.Start.Get(); ok {
		bind("date_created >=", start)
	}
	if end, ok := f.End.Get(); ok {
		bind("date_created <", end)
	}

	return Predicate{Clause: strings.Join(clauses, " AND "), Args: args}
}

func Insert(d Dialect, r readings.Reading) Query {
	return Query{
		SQL: "INSERT INTO " + table + " (" + columns + ") VALUES (" +
			d.placeholder(1) + ", " + d.placeholder(2) + ", " + d.placeholder(3) + ", " + d.placeholder(4) + ")",
		Args: []any{r.DeviceUUID, string(r.Type), r.Value, r.DateCreated},
	}
}

// List returns every matching row with all four columns.
func List(d Dialect, deviceUUID string, f readings.Filter) Query {
	p := Where(d, deviceUUID, f)
	return Query{
		SQL:  "SELECT " + columns + " FROM " + table + " WHERE " + p.Clause + " ORDER BY date_created ASC, value ASC",
		Args: p.Args,
	}
}

// Extremum returns the single lowest (Ascending) or highest (Descending)
// row. Ties on value go to the earliest date_created in both directions.
func Extremum(d Dialect, deviceUUID string, f readings.Filter, dir Direction) Query {
	p := Where(d, deviceUUID, f)
	order := "ASC"
	if dir == Descending {
		order = "DESC"
	}
	return Query{
		SQL:  "SELECT " + columns + " FROM " + table + " WHERE " + p.Clause + " ORDER BY value " + order + ", date_created ASC LIMIT 1",
		Args: p.Args,
	}
}

// Mean returns one row with the match count and the average value. The
// average is NULL when nothing matches.
func Mean(d Dialect, deviceUUID string, f readings.Filter) Query {
	p := Where(d, deviceUUID, f)
	return Query{
		SQL:  "SELECT COUNT(*) AS count, CAST(AVG(value) AS DOUBLE PRECISION) AS mean_value FROM " + table + " WHERE " + p.Clause,
		Args: p.Args,
	}
}

// Mode returns the most frequent value; equally frequent values resolve to
// the smallest.
func Mode(d Dialect, deviceUUID string, f readings.Filter) Query {
	p := Where(d, deviceUUID, f)
	return Query{
		SQL:  "SELECT value AS mode_value, COUNT(*) AS occurrences FROM " + table + " WHERE " + p.Clause + " GROUP BY value ORDER BY COUNT(*) DESC, value ASC LIMIT 1",
		Args: p.Args,
	}
}

// Values returns the unsorted value column over a fully bounded filter.
func Values(d Dialect, deviceUUID string, f readings.Filter) (Query, error) {
	if !f.Type.IsSet() || !f.Start.IsSet() || !f.End.IsSet() {
		return Query{}, ErrIncompleteRange
	}
	p := Where(d, deviceUUID, f)
	return Query{
		SQL:  "SELECT value FROM " + table + " WHERE " + p.Clause,
		Args: p.Args,
	}, nil
}

// Ordered returns every matching row sorted by value, then date_created.
func Ordered(d Dialect, deviceUUID string, f readings.Filter) Query {
	p := Where(d, deviceUUID, f)
	return Query{
		SQL:  "SELECT " + columns + " FROM " + table + " WHERE " + p.Clause + " ORDER BY value ASC, date_created ASC",
		Args: p.Args,
	}
}
