package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals
// as YYYY-MM-DD and accepts either that form or a full RFC 3339 instant.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	if parsed, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = parsed
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	d.Time = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
