package ledger

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Date is a custom type that handles date-only values
type Date struct {
	time.Time
}

// NewDate builds a Date from calendar components
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("unable to parse date: %s", s)
	}
	return Date{t}, nil
}

// MustParseDate is ParseDate that panics on malformed input. Intended
// for fixtures and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	// Date only first (YYYY-MM-DD)
	t, err := time.Parse(dateLayout, str)
	if err == nil {
		d.Time = t
		return nil
	}

	// Full timestamp (RFC3339)
	t, err = time.Parse(time.RFC3339, str)
	if err == nil {
		d.Time = t
		return nil
	}

	return fmt.Errorf("unable to parse date: %s", str)
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format(dateLayout))), nil
}

// String returns the date as YYYY-MM-DD
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// MonthKey returns the YYYY-MM bucket for this date
func (d Date) MonthKey() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(monthLayout)
}

// MonthKeyOf returns the YYYY-MM bucket for an instant
func MonthKeyOf(t time.Time) string {
	return t.Format(monthLayout)
}

// ValidMonthKey reports whether s is a well-formed YYYY-MM month key
func ValidMonthKey(s string) bool {
	_, err := time.Parse(monthLayout, s)
	return err == nil
}
