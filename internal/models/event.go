package models

import "time"

type BookingAction string

const (
	BookingActionCreated    BookingAction = "created"
	BookingActionTransition BookingAction = "status_changed"
	BookingActionReplaced   BookingAction = "replaced"
)

// BookingEvent публикуется в kafka и в websocket после каждой записи бронирования
type BookingEvent struct {
	Action     BookingAction `json:"action"`
	BookingID  uint          `json:"booking_id"`
	Status     BookingStatus `json:"status"`
	CarID      uint          `json:"car_id"`
	UserID     uint          `json:"user_id"`
	TotalPrice float64       `json:"total_price"`
	At         time.Time     `json:"at"`
}

func NewBookingEvent(action BookingAction, b *Booking) BookingEvent {
	return BookingEvent{
		Action:     action,
		BookingID:  b.ID,
		Status:     b.Status,
		CarID:      b.CarID,
		UserID:     b.UserID,
		TotalPrice: b.TotalPrice,
		At:         time.Now().UTC(),
	}
}
