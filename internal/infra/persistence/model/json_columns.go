package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// StringList is a JSON encoded list of strings.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return marshalJSON(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	return unmarshalJSON(src, l)
}

// EventRecord is the stored form of a delivery event.
type EventRecord struct {
	Label     string     `json:"label"`
	Detail    string     `json:"detail"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp"`
}

// EventList is a JSON encoded event log.
type EventList []EventRecord

// Value implements driver.Valuer.
func (l EventList) Value() (driver.Value, error) {
	return marshalJSON(l)
}

// Scan implements sql.Scanner.
func (l *EventList) Scan(src any) error {
	return unmarshalJSON(src, l)
}

func marshalJSON(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode json column")
	}

	return string(data), nil
}

func unmarshalJSON(src, dst any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported json column type %T", src)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrap(err, "failed to decode json column")
	}

	return nil
}
