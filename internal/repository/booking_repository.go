package repository

import (
	"context"
	"time"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookingTransition описывает атомарное изменение статуса бронирования
// вместе с доступностью машины.
type BookingTransition struct {
	BookingID    uint
	CarID        uint
	From         models.BookingStatus
	To           models.BookingStatus
	TotalPrice   float64
	CarAvailable *bool
}

// CarAvailability - новое значение доступности машины, записываемое вместе с бронированием
type CarAvailability struct {
	CarID     uint
	Available bool
}

type BookingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBookingRepository(db *gorm.DB, log *zap.Logger) *BookingRepository {
	return &BookingRepository{db: db, log: log.Named("booking_repo")}
}

func (r *BookingRepository) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Preload("User").Preload("Car").Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}

	bookings := make([]models.Booking, 0)
	if err := q.Find(&bookings).Error; err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}
	return bookings, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Preload("User").Preload("Car").First(&booking, id).Error
	if err != nil {
		return models.Booking{}, errors.Wrapf(translate(err, nil), "get booking %d", id)
	}
	return booking, nil
}

// Create сохраняет бронирование и, если задано, меняет доступность машины в одной транзакции.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking, carAvailable *bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User", "Car").Create(booking).Error; err != nil {
			return errors.Wrap(err, "create booking")
		}
		return setCarAvailability(tx, booking.CarID, carAvailable)
	})
}

// ApplyTransition меняет статус и цену только если статус в базе все еще равен From.
func (r *BookingRepository) ApplyTransition(ctx context.Context, t BookingTransition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", t.BookingID, t.From).
			Updates(map[string]interface{}{
				"status":      t.To,
				"total_price": t.TotalPrice,
				"updated_at":  time.Now(),
			})
		if res.Error != nil {
			return errors.Wrap(res.Error, "update booking status")
		}
		if res.RowsAffected == 0 {
			r.log.Warn("booking status changed concurrently",
				zap.Uint("booking_id", t.BookingID), zap.String("from", string(t.From)))
			return errs.ErrInvalidTransition
		}
		return setCarAvailability(tx, t.CarID, t.CarAvailable)
	})
}

// Replace перезаписывает бронирование целиком (все колонки, включая NULL водителей)
// и применяет cars в той же транзакции, в переданном порядке.
func (r *BookingRepository) Replace(ctx context.Context, booking *models.Booking, prevStatus models.BookingStatus, cars []CarAvailability) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking.UpdatedAt = time.Now()
		res := tx.Model(booking).
			Where("status = ?", prevStatus).
			Select("*").
			Omit("ID", "CreatedAt", "User", "Car").
			Updates(booking)
		if res.Error != nil {
			return errors.Wrap(res.Error, "replace booking")
		}
		if res.RowsAffected == 0 {
			return errs.ErrInvalidTransition
		}
		for _, c := range cars {
			available := c.Available
			if err := setCarAvailability(tx, c.CarID, &available); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	var rows []struct {
		Status models.BookingStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count bookings")
	}
	counts := make(map[models.BookingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *BookingRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "sum revenue")
	}
	return total, nil
}

func setCarAvailability(tx *gorm.DB, carID uint, available *bool) error {
	if available == nil {
		return nil
	}
	res := tx.Model(&models.Car{}).Where("id = ?", carID).
		Updates(map[string]interface{}{"availability": *available, "updated_at": time.Now()})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update car availability")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(errs.ErrNotFound, "car %d", carID)
	}
	return nil
}
