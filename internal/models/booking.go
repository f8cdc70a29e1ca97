package models

import (
	"strings"
	"time"

	"car-rental-backend/internal/errs"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"   // Ожидает подтверждения
	BookingStatusApproved  BookingStatus = "approved"  // Подтверждено, машина выдана
	BookingStatusCompleted BookingStatus = "completed" // Завершено, машина возвращена
	BookingStatusCancelled BookingStatus = "cancelled" // Отклонено или отменено
)

// Допустимые переходы статусов бронирования
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusApproved, BookingStatusCancelled},
	BookingStatusApproved: {BookingStatusCompleted},
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", errs.ErrInvalidStatus
	}
	return status, nil
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// CarAvailabilityAfter возвращает новое значение доступности машины после перехода в статус s,
// nil если доступность не меняется.
func (s BookingStatus) CarAvailabilityAfter() *bool {
	var available bool
	switch s {
	case BookingStatusApproved:
		available = false
	case BookingStatusCompleted:
		available = true
	default:
		return nil
	}
	return &available
}

// Booking представляет бронирование машины клиентом
type Booking struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	UserID         uint          `json:"user_id" gorm:"not null;index"`
	CarID          uint          `json:"car_id" gorm:"not null;index"`
	StartDate      time.Time     `json:"start_date" gorm:"type:date;not null"`
	EndDate        time.Time     `json:"end_date" gorm:"type:date;not null"`
	Status         BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	TotalPrice     float64       `json:"total_price" gorm:"type:numeric(10,2);not null;default:0"`
	ReturnLocation *string       `json:"return_location"`

	// Дополнительные водители хранятся плоскими колонками
	Driver1Name     *string `json:"driver1_name"`
	Driver1Address  *string `json:"driver1_address"`
	Driver1IDNumber *string `json:"driver1_id_number"`
	Driver1License  *string `json:"driver1_license"`
	Driver2Name     *string `json:"driver2_name"`
	Driver2Address  *string `json:"driver2_address"`
	Driver2IDNumber *string `json:"driver2_id_number"`
	Driver2License  *string `json:"driver2_license"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Car       Car       `json:"-" gorm:"foreignKey:CarID"`
}

// NamedDriver - водитель, указанный в бронировании помимо владельца аккаунта
type NamedDriver struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
	License  string `json:"license,omitempty"`
}

// Drivers возвращает двух возможных водителей; nil если имя не указано.
func (b *Booking) Drivers() [2]*NamedDriver {
	return [2]*NamedDriver{
		namedDriver(b.Driver1Name, b.Driver1Address, b.Driver1IDNumber, b.Driver1License),
		namedDriver(b.Driver2Name, b.Driver2Address, b.Driver2IDNumber, b.Driver2License),
	}
}

func namedDriver(name, address, idNumber, license *string) *NamedDriver {
	if deref(name) == "" {
		return nil
	}
	return &NamedDriver{
		Name:     deref(name),
		Address:  deref(address),
		IDNumber: deref(idNumber),
		License:  deref(license),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// BookingResponse представляет ответ API с информацией о бронировании
type BookingResponse struct {
	Booking
	User *UserResponse `json:"user,omitempty"`
	Car  *CarResponse  `json:"car,omitempty"`
}

func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{Booking: *b}
	if b.User.ID != 0 {
		u := b.User.ToResponse()
		resp.User = &u
	}
	if b.Car.ID != 0 {
		c := b.Car.ToResponse()
		resp.Car = &c
	}
	return resp
}

// BookingRequest - тело POST /bookings и PUT /bookings/:id.
// PUT заменяет запись целиком: отсутствующие поля водителей обнуляются.
type BookingRequest struct {
	UserID         uint    `json:"user_id"`
	CarID          uint    `json:"car_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"total_price"` // игнорируется, цена всегда пересчитывается
	ReturnLocation *string `json:"return_location"`

	Driver1Name     *string `json:"driver1_name"`
	Driver1Address  *string `json:"driver1_address"`
	Driver1IDNumber *string `json:"driver1_id_number"`
	Driver1License  *string `json:"driver1_license"`
	Driver2Name     *string `json:"driver2_name"`
	Driver2Address  *string `json:"driver2_address"`
	Driver2IDNumber *string `json:"driver2_id_number"`
	Driver2License  *string `json:"driver2_license"`
}

// ApplyOptional переносит необязательные поля запроса в бронирование (полная замена).
func (r *BookingRequest) ApplyOptional(b *Booking) {
	b.ReturnLocation = r.ReturnLocation
	b.Driver1Name = r.Driver1Name
	b.Driver1Address = r.Driver1Address
	b.Driver1IDNumber = r.Driver1IDNumber
	b.Driver1License = r.Driver1License
	b.Driver2Name = r.Driver2Name
	b.Driver2Address = r.Driver2Address
	b.Driver2IDNumber = r.Driver2IDNumber
	b.Driver2License = r.Driver2License
}

type BookingFilter struct {
	Status BookingStatus
	UserID uint
}
