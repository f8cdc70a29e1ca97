package models_test

import (
	"testing"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from, to models.BookingStatus
		want     bool
	}{
		{models.BookingStatusPending, models.BookingStatusApproved, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusApproved, models.BookingStatusCompleted, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusApproved, models.BookingStatusCancelled, false},
		{models.BookingStatusApproved, models.BookingStatusApproved, false},
		{models.BookingStatusCompleted, models.BookingStatusApproved, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatus_CarAvailabilityAfter(t *testing.T) {
	t.Parallel()
	approved := models.BookingStatusApproved.CarAvailabilityAfter()
	require.NotNil(t, approved)
	require.False(t, *approved)

	completed := models.BookingStatusCompleted.CarAvailabilityAfter()
	require.NotNil(t, completed)
	require.True(t, *completed)

	require.Nil(t, models.BookingStatusCancelled.CarAvailabilityAfter())
	require.Nil(t, models.BookingStatusPending.CarAvailabilityAfter())
}

func TestParseBookingStatus(t *testing.T) {
	t.Parallel()
	s, err := models.ParseBookingStatus(" Approved ")
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusApproved, s)

	_, err = models.ParseBookingStatus("started")
	require.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestBooking_Drivers(t *testing.T) {
	t.Parallel()
	name, cin, blank := "Amine", "AB1234", "  "
	b := models.Booking{Driver1Name: &name, Driver1IDNumber: &cin, Driver2Name: &blank}

	drivers := b.Drivers()
	require.NotNil(t, drivers[0])
	require.Equal(t, "Amine", drivers[0].Name)
	require.Equal(t, "AB1234", drivers[0].IDNumber)
	require.Empty(t, drivers[0].Address)
	require.Nil(t, drivers[1])
}
