package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RequestDateLayout is the calendar date format accepted on requests.
const RequestDateLayout = "2006-01-02"

// ResponseDateLayout is the fixed format dates are rendered with on responses.
const ResponseDateLayout = "02-01-2006"

// Date is the wire representation of a calendar date. It carries no time of
// day; requests supply it as an ISO yyyy-MM-dd string.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string in %s format", RequestDateLayout)
	}
	if s == "" {
		return nil
	}
	t, err := time.Parse(RequestDateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s", s, RequestDateLayout)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(RequestDateLayout))
}

// Value implements driver.Valuer. A zero Date maps to NULL, which also lets
// the validator treat it as an absent value.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
