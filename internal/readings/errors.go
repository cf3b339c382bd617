package readings

import (
	"encoding/json"
	"sort"
	"strings"
)

const (
	MsgMissing      = "Missing data for required field."
	MsgNotInteger   = "Not a valid integer."
	MsgNotString    = "Not a valid string."
	MsgUnknownField = "Unknown field."
	MsgInvalidBody  = "Invalid input type."
	MsgEmpty        = "Field may not be empty."
	SchemaField     = "_schema"
)

// ValidationErrors maps a field name to its error messages.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(v[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string(v))
}
