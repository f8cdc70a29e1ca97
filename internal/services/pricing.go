package services

import (
	"math"
	"time"

	"car-rental-backend/internal/errs"
)

const day = 24 * time.Hour

// CalculatePrice считает число дней аренды (включая оба конца) и итоговую сумму.
// Даты приводятся к календарным датам в UTC.
func CalculatePrice(start, end time.Time, ratePerDay float64) (int, float64, error) {
	start, end = calendarDate(start), calendarDate(end)
	if start.After(end) {
		return 0, 0, errs.ErrInvalidDateRange
	}

	days := int(math.Ceil(float64(end.Sub(start))/float64(day))) + 1
	total := math.Round(float64(days)*ratePerDay*100) / 100
	return days, total, nil
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate принимает "2006-01-02" или RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return calendarDate(t), nil
}
