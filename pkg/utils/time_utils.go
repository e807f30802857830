package utils

import (
	"time"

	"gorm.io/datatypes"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseDate parses a "2006-01-02" string into a DATE column value.
// Empty input maps to nil so optional fields stay unset.
func ParseDate(s string) (*datatypes.Date, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, ErrInvalidInput
	}
	d := datatypes.Date(t)
	return &d, nil
}

func FormatDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(dateLayout)
}

// ParseClock validates a "15:04" wall-clock string.
func ParseClock(s string) (string, error) {
	if _, err := time.Parse(clockLayout, s); err != nil {
		return "", ErrInvalidInput
	}
	return s, nil
}
