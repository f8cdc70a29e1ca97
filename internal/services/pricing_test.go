package services

import (
	"testing"
	"time"

	"car-rental-backend/internal/errs"

	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculatePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		rate      float64
		wantDays  int
		wantTotal float64
		wantErr   error
	}{
		{name: "three days", start: date("2024-06-01"), end: date("2024-06-03"), rate: 200, wantDays: 3, wantTotal: 600},
		{name: "same day", start: date("2024-06-01"), end: date("2024-06-01"), rate: 350.5, wantDays: 1, wantTotal: 350.5},
		{name: "rounded to cents", start: date("2024-06-01"), end: date("2024-06-02"), rate: 99.995, wantDays: 2, wantTotal: 199.99},
		{
			name:      "time of day ignored",
			start:     time.Date(2024, 6, 1, 22, 30, 0, 0, time.UTC),
			end:       time.Date(2024, 6, 3, 1, 0, 0, 0, time.UTC),
			rate:      100,
			wantDays:  3,
			wantTotal: 300,
		},
		{name: "month boundary", start: date("2024-02-28"), end: date("2024-03-01"), rate: 10, wantDays: 3, wantTotal: 30},
		{name: "start after end", start: date("2024-06-03"), end: date("2024-06-01"), rate: 200, wantErr: errs.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			days, total, err := CalculatePrice(tt.start, tt.end, tt.rate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDays, days)
			require.InDelta(t, tt.wantTotal, total, 0.001)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	require.Equal(t, date("2024-06-01"), d)

	d, err = ParseDate("2024-06-01T15:04:05Z")
	require.NoError(t, err)
	require.Equal(t, date("2024-06-01"), d)

	_, err = ParseDate("01/06/2024")
	require.Error(t, err)
}
