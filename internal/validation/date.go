package validation

import (
	"errors"
	"time"
)

// DateLayout is the calendar-day format used everywhere: logs, goals,
// and the date query parameter.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

func ValidateDate(date string) error {
	_, err := time.Parse(DateLayout, date)
	if err != nil {
		return ErrInvalidDate
	}
	return nil
}
