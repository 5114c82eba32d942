package model

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is an ordered sequence stored as a JSON array in a TEXT column
// (doctor timings and available days). Slot order is significant: callers use
// the first and last entries for display ranges.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan fails closed: a malformed row yields an empty sequence instead of an
// error, so one bad record cannot break a listing endpoint.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}
