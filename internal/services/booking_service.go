package services

import (
	"context"
	"strings"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"
	"car-rental-backend/internal/repository"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service.go -package=mocks

type BookingRepository interface {
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	GetByID(ctx context.Context, id uint) (models.Booking, error)
	Create(ctx context.Context, booking *models.Booking, carAvailable *bool) error
	ApplyTransition(ctx context.Context, t repository.BookingTransition) error
	Replace(ctx context.Context, booking *models.Booking, prevStatus models.BookingStatus, cars []repository.CarAvailability) error
}

type CarGetter interface {
	GetByID(ctx context.Context, id uint) (models.Car, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id uint) (models.User, error)
}

// BookingObserver получает бронирование после успешной записи.
type BookingObserver interface {
	BookingChanged(ctx context.Context, action models.BookingAction, booking *models.Booking, n *Notification)
}

// Actor - владелец токена, выполняющий запрос
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// BookingResult - бронирование после записи и сообщение клиенту, если у него есть телефон
type BookingResult struct {
	Booking      models.Booking `json:"booking"`
	Notification *Notification  `json:"notification,omitempty"`
}

type BookingService struct {
	bookings BookingRepository
	cars     CarGetter
	users    UserGetter
	observer BookingObserver
	notify   NotificationConfig
	log      *zap.Logger
}

func NewBookingService(bookings BookingRepository, cars CarGetter, users UserGetter, observer BookingObserver,
	notify NotificationConfig, log *zap.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		cars:     cars,
		users:    users,
		observer: observer,
		notify:   notify,
		log:      log.Named("booking_service"),
	}
}

func (s *BookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.bookings.List(ctx, filter)
}

func (s *BookingService) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookings.List(ctx, models.BookingFilter{UserID: userID})
}

func (s *BookingService) Get(ctx context.Context, id uint) (models.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// Transition переводит бронирование в статус target, пересчитывает цену
// и меняет доступность машины одной транзакцией.
func (s *BookingService) Transition(ctx context.Context, id uint, target models.BookingStatus, locale string) (BookingResult, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return BookingResult{}, err
	}
	if err := validateBooking(&booking); err != nil {
		return BookingResult{}, err
	}
	if !booking.Status.CanTransitionTo(target) {
		return BookingResult{}, errors.Wrapf(errs.ErrInvalidTransition, "%s -> %s", booking.Status, target)
	}

	_, total, err := CalculatePrice(booking.StartDate, booking.EndDate, booking.Car.PricePerDay)
	if err != nil {
		return BookingResult{}, err
	}

	available := target.CarAvailabilityAfter()
	err = s.bookings.ApplyTransition(ctx, repository.BookingTransition{
		BookingID:    booking.ID,
		CarID:        booking.CarID,
		From:         booking.Status,
		To:           target,
		TotalPrice:   total,
		CarAvailable: available,
	})
	if err != nil {
		return BookingResult{}, err
	}

	s.log.Info("booking status changed",
		zap.Uint("booking_id", booking.ID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(target)),
		zap.Float64("total_price", total))

	booking.Status = target
	booking.TotalPrice = total
	if available != nil {
		booking.Car.Availability = *available
	}

	var n *Notification
	if kind, ok := NotificationKindFor(target); ok {
		n = s.buildNotification(&booking, kind, locale)
	}
	s.changed(ctx, models.BookingActionTransition, &booking, n)
	return BookingResult{Booking: booking, Notification: n}, nil
}

// Create оформляет бронирование. Администратор создает сразу подтвержденное бронирование
// и занимает машину, клиент - заявку в статусе pending на себя.
func (s *BookingService) Create(ctx context.Context, req models.BookingRequest, actor Actor, locale string) (BookingResult, error) {
	if !actor.IsAdmin() {
		req.UserID = actor.ID
	}

	booking, err := s.fromRequest(ctx, req)
	if err != nil {
		return BookingResult{}, err
	}

	var available *bool
	if actor.IsAdmin() {
		booking.Status = models.BookingStatusApproved
		available = booking.Status.CarAvailabilityAfter()
	} else {
		booking.Status = models.BookingStatusPending
	}

	if err := s.bookings.Create(ctx, &booking, available); err != nil {
		return BookingResult{}, err
	}
	if available != nil {
		booking.Car.Availability = *available
	}

	s.log.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.String("status", string(booking.Status)),
		zap.Uint("actor_id", actor.ID))

	var n *Notification
	if actor.IsAdmin() {
		n = s.buildNotification(&booking, NotificationCreated, locale)
	}
	s.changed(ctx, models.BookingActionCreated, &booking, n)
	return BookingResult{Booking: booking, Notification: n}, nil
}

// Replace перезаписывает бронирование целиком. Статус может остаться прежним
// или измениться по таблице переходов.
func (s *BookingService) Replace(ctx context.Context, id uint, req models.BookingRequest, locale string) (BookingResult, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return BookingResult{}, err
	}

	target := current.Status
	if strings.TrimSpace(req.Status) != "" {
		if target, err = models.ParseBookingStatus(req.Status); err != nil {
			return BookingResult{}, err
		}
	}
	changed := target != current.Status
	if changed && !current.Status.CanTransitionTo(target) {
		return BookingResult{}, errors.Wrapf(errs.ErrInvalidTransition, "%s -> %s", current.Status, target)
	}

	booking, err := s.fromRequest(ctx, req)
	if err != nil {
		return BookingResult{}, err
	}
	booking.ID = current.ID
	booking.CreatedAt = current.CreatedAt
	booking.Status = target

	cars := replacementAvailability(&current, &booking)
	if err := s.bookings.Replace(ctx, &booking, current.Status, cars); err != nil {
		return BookingResult{}, err
	}
	for _, c := range cars {
		if c.CarID == booking.CarID {
			booking.Car.Availability = c.Available
		}
	}

	s.log.Info("booking replaced",
		zap.Uint("booking_id", booking.ID),
		zap.String("status", string(booking.Status)),
		zap.Float64("total_price", booking.TotalPrice))

	var n *Notification
	if kind, ok := NotificationKindFor(target); ok && changed {
		n = s.buildNotification(&booking, kind, locale)
	}
	s.changed(ctx, models.BookingActionReplaced, &booking, n)
	return BookingResult{Booking: booking, Notification: n}, nil
}

// replacementAvailability вычисляет записи доступности машин при замене бронирования.
// Машина подтвержденного бронирования освобождается, если бронирование переносят на другую;
// новая машина получает доступность по целевому статусу.
func replacementAvailability(current, next *models.Booking) []repository.CarAvailability {
	var cars []repository.CarAvailability
	carChanged := current.CarID != next.CarID
	if carChanged && current.Status == models.BookingStatusApproved {
		cars = append(cars, repository.CarAvailability{CarID: current.CarID, Available: true})
	}

	var available *bool
	switch {
	case next.Status != current.Status:
		available = next.Status.CarAvailabilityAfter()
	case carChanged:
		if next.Status == models.BookingStatusApproved {
			held := false
			available = &held
		}
	}
	if available != nil {
		cars = append(cars, repository.CarAvailability{CarID: next.CarID, Available: *available})
	}
	return cars
}

// Contract возвращает разметку и PDF договора аренды.
func (s *BookingService) Contract(ctx context.Context, id uint) (ContractLayout, []byte, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return ContractLayout{}, nil, err
	}
	layout := BuildContract(&booking)
	pdf, err := RenderContractPDF(layout)
	if err != nil {
		return ContractLayout{}, nil, err
	}
	return layout, pdf, nil
}

// fromRequest проверяет запрос, подгружает машину и клиента и считает цену.
func (s *BookingService) fromRequest(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	if req.UserID == 0 || req.CarID == 0 || strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		return models.Booking{}, errs.ErrIncompleteBooking
	}
	start, err := ParseDate(req.StartDate)
	if err != nil {
		return models.Booking{}, errors.Wrap(errs.ErrInvalidDateRange, "start_date")
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return models.Booking{}, errors.Wrap(errs.ErrInvalidDateRange, "end_date")
	}
	if start.After(end) {
		return models.Booking{}, errs.ErrInvalidDateRange
	}

	car, err := s.cars.GetByID(ctx, req.CarID)
	if err != nil {
		return models.Booking{}, err
	}
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return models.Booking{}, err
	}

	_, total, err := CalculatePrice(start, end, car.PricePerDay)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		UserID:     user.ID,
		CarID:      car.ID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: total,
		User:       user,
		Car:        car,
	}
	req.ApplyOptional(&booking)
	return booking, nil
}

func (s *BookingService) buildNotification(b *models.Booking, kind NotificationKind, locale string) *Notification {
	n, ok := BuildNotification(b, kind, locale, s.notify)
	if !ok {
		s.log.Debug("renter has no phone, notification skipped", zap.Uint("booking_id", b.ID))
		return nil
	}
	return &n
}

func (s *BookingService) changed(ctx context.Context, action models.BookingAction, b *models.Booking, n *Notification) {
	if s.observer != nil {
		s.observer.BookingChanged(ctx, action, b, n)
	}
}

// validateBooking проверяет сохраненное бронирование до перехода.
func validateBooking(b *models.Booking) error {
	if b.UserID == 0 || b.CarID == 0 || b.Car.ID == 0 || b.StartDate.IsZero() || b.EndDate.IsZero() {
		return errs.ErrIncompleteBooking
	}
	if b.StartDate.After(b.EndDate) {
		return errs.ErrInvalidDateRange
	}
	return nil
}
