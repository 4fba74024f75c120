package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// dateTimeLayouts are tried in order when parsing timestamps. Schedule
// exports in the wild carry both zoned and zone-less ISO-8601 values.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateLayout,
}

// Date is a civil date serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current civil date in local time.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, m, d)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t}, nil
}

// DaysSince returns the number of whole days between other and d.
// Positive when d is later than other.
func (d Date) DaysSince(other Date) int {
	return int(d.Time.Sub(other.Time) / (24 * time.Hour))
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON writes the date as "YYYY-MM-DD". Zero dates become null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON reads "YYYY-MM-DD" strings; null and empty strings yield
// the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateTime is an ISO-8601 timestamp. Zone-less input is read as UTC.
type DateTime struct {
	time.Time
}

// ParseDateTime parses an ISO-8601 timestamp, accepting RFC3339,
// zone-less, and date-only forms.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("parsing timestamp %q: unrecognized format", s)
}

// Date truncates the timestamp to its civil date.
func (dt DateTime) Date() Date {
	y, m, d := dt.Time.Date()
	return NewDate(y, m, d)
}

// Clock returns the "HH:MM" wall-clock portion of the timestamp.
func (dt DateTime) Clock() string {
	return dt.Format("15:04")
}

// MarshalJSON writes the timestamp as RFC3339. Zero timestamps become null.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	if dt.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(dt.Format(time.RFC3339))
}

// UnmarshalJSON reads ISO-8601 timestamp strings.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*dt = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
