package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MustDate parses s as YYYY-MM-DD and panics on malformed input. It is
// meant for compiled-in data only.
func MustDate(s string) Date {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("invalid date %q: %v", s, err))
	}
	return Date{Time: t}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Display renders the date the way listing cards show it, e.g. "Jul 22, 2025".
func (d Date) Display() string {
	return d.Format("Jan 2, 2006")
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}
