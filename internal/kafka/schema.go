package kafka

import "sensor-readings-service/internal/readings"

// ReadingRecord is the JSON payload carried on both the ingest topic and the
// created-readings topic. DateCreated may be omitted on ingest.
type ReadingRecord struct {
	DeviceUUID  string              `json:"device_uuid"`
	Type        readings.SensorType `json:"type"`
	Value       int                 `json:"value"`
	DateCreated *int64              `json:"date_created,omitempty"`
}

func RecordFromReading(r readings.Reading) ReadingRecord {
	created := r.DateCreated
	return ReadingRecord{
		DeviceUUID:  r.DeviceUUID,
		Type:        r.Type,
		Value:       r.Value,
		DateCreated: &created,
	}
}

// Reading resolves the record into a reading, stamping defaultCreated when
// the producer left date_created out.
func (rec ReadingRecord) Reading(defaultCreated int64) readings.Reading {
	r := readings.Reading{
		DeviceUUID:  rec.DeviceUUID,
		Type:        rec.Type,
		Value:       rec.Value,
		DateCreated: defaultCreated,
	}
	if rec.DateCreated != nil {
		r.DateCreated = *rec.DateCreated
	}
	return r
}
