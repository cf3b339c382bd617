package readings

import "strings"

type SensorType string

const (
	Temperature SensorType = "temperature"
	Humidity    SensorType = "humidity"
)

var SensorTypes = []SensorType{Temperature, Humidity}

const (
	MinValue = 0
	MaxValue = 100
)

func (t SensorType) Valid() bool {
	for _, known := range SensorTypes {
		if t == known {
			return true
		}
	}
	return false
}

func sensorTypeList() string {
	names := make([]string, 0, len(SensorTypes))
	for _, t := range SensorTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// Reading is one stored sensor observation. DateCreated is epoch seconds.
type Reading struct {
	DeviceUUID  string     `json:"device_uuid" db:"device_uuid"`
	Type        SensorType `json:"type" db:"type"`
	Value       int        `json:"value" db:"value"`
	DateCreated int64      `json:"date_created" db:"date_created"`
}
