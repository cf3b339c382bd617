package db

import "database/sql"

type meanRow struct {
	Count     int64           `db:"count"`
	MeanValue sql.NullFloat64 `db:"mean_value"`
}

type modeRow struct {
	ModeValue   int   `db:"mode_value"`
	Occurrences int64 `db:"occurrences"`
}
