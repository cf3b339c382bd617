package readings

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"
)

// DecodeReading validates a POST body and builds the reading to store.
// A missing date_created resolves to now.
func DecodeReading(deviceUUID string, body []byte, now time.Time) (Reading, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return Reading{}, ValidationErrors{SchemaField: {MsgInvalidBody}}
	}

	r := Reading{DeviceUUID: deviceUUID}
	verrs := ValidationErrors{}

	for field := range raw {
		switch field {
		case FieldType, FieldValue, FieldDateCreated:
		default:
			verrs.Add(field, MsgUnknownField)
		}
	}

	if msg, ok := raw[FieldType]; ok {
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			verrs.Add(FieldType, MsgNotString)
		} else {
			r.Type = SensorType(s)
		}
	} else {
		verrs.Add(FieldType, MsgMissing)
	}

	if msg, ok := raw[FieldValue]; ok {
		n, ok := decodeInt(msg)
		if !ok {
			verrs.Add(FieldValue, MsgNotInteger)
		} else {
			r.Value = int(n)
		}
	} else {
		verrs.Add(FieldValue, MsgMissing)
	}

	r.DateCreated = now.Unix()
	if msg, ok := raw[FieldDateCreated]; ok && !isNull(msg) {
		n, ok := decodeInt(msg)
		if !ok {
			verrs.Add(FieldDateCreated, MsgNotInteger)
		} else {
			r.DateCreated = n
		}
	}

	// Shape errors take precedence; range checks only run on well-typed fields.
	if _, bad := verrs[FieldType]; !bad {
		if !r.Type.Valid() {
			verrs.Add(FieldType, oneOfMessage())
		}
	}
	if _, bad := verrs[FieldValue]; !bad {
		if r.Value < MinValue || r.Value > MaxValue {
			verrs.Add(FieldValue, rangeMessage())
		}
	}

	if err := verrs.Err(); err != nil {
		return Reading{}, err
	}
	return r, nil
}

// Validate applies the write-side rules to a fully formed reading.
func Validate(r Reading) error {
	verrs := ValidationErrors{}
	if strings.TrimSpace(r.DeviceUUID) == "" {
		verrs.Add(FieldDeviceUUID, MsgEmpty)
	}
	if !r.Type.Valid() {
		verrs.Add(FieldType, oneOfMessage())
	}
	if r.Value < MinValue || r.Value > MaxValue {
		verrs.Add(FieldValue, rangeMessage())
	}
	return verrs.Err()
}

// decodeInt accepts integer literals, whole-valued floats such as 50.0 and
// numeric strings such as "50". Fractional values are rejected.
func decodeInt(msg json.RawMessage) (int64, bool) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var num json.Number
	if err := dec.Decode(&num); err != nil {
		return 0, false
	}
	if n, err := num.Int64(); err == nil {
		return n, true
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func isNull(msg json.RawMessage) bool {
	return string(bytes.TrimSpace(msg)) == "null"
}
