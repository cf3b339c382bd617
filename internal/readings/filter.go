package readings

import (
	"net/url"
	"strconv"
)

const (
	FieldType        = "type"
	FieldValue       = "value"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldDateCreated = "date_created"
	FieldDeviceUUID  = "device_uuid"
)

// Filter holds the optional constraints shared by every read endpoint.
// Start is inclusive, End is exclusive.
type Filter struct {
	Type  Optional[SensorType]
	Start Optional[int64]
	End   Optional[int64]
}

type filterRules struct {
	requireType  bool
	requireRange bool
}

// ParseListFilter accepts type, start and end, all optional.
func ParseListFilter(q url.Values) (Filter, error) {
	return parseFilter(q, filterRules{})
}

// ParseValueFilter requires type; start and end stay optional.
func ParseValueFilter(q url.Values) (Filter, error) {
	return parseFilter(q, filterRules{requireType: true})
}

// ParseRangeFilter requires type, start and end.
func ParseRangeFilter(q url.Values) (Filter, error) {
	return parseFilter(q, filterRules{requireType: true, requireRange: true})
}

func parseFilter(q url.Values, rules filterRules) (Filter, error) {
	var f Filter
	verrs := ValidationErrors{}

	if q.Has(FieldType) {
		t := SensorType(q.Get(FieldType))
		if !t.Valid() {
			verrs.Add(FieldType, oneOfMessage())
		} else {
			f.Type = Some(t)
		}
	} else if rules.requireType {
		verrs.Add(FieldType, MsgMissing)
	}

	f.Start = parseBound(q, FieldStart, rules.requireRange, verrs)
	f.End = parseBound(q, FieldEnd, rules.requireRange, verrs)

	if err := verrs.Err(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func parseBound(q url.Values, field string, required bool, verrs ValidationErrors) Optional[int64] {
	if !q.Has(field) {
		if required {
			verrs.Add(field, MsgMissing)
		}
		return None[int64]()
	}
	n, err := strconv.ParseInt(q.Get(field), 10, 64)
	if err != nil {
		verrs.Add(field, MsgNotInteger)
		return None[int64]()
	}
	return Some(n)
}

func oneOfMessage() string {
	return "Must be one of: " + sensorTypeList() + "."
}

func rangeMessage() string {
	return "Must be greater than or equal to " + strconv.Itoa(MinValue) +
		" and less than or equal to " + strconv.Itoa(MaxValue) + "."
}
