package repository

import (
	"context"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) List(ctx context.Context, onlyAvailable bool) ([]models.Car, error) {
	q := r.db.WithContext(ctx).Order("id")
	if onlyAvailable {
		q = q.Where("availability = ?", true)
	}
	cars := make([]models.Car, 0)
	if err := q.Find(&cars).Error; err != nil {
		return nil, errors.Wrap(err, "list cars")
	}
	return cars, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id uint) (models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return models.Car{}, errors.Wrapf(translate(err, nil), "get car %d", id)
	}
	return car, nil
}

func (r *CarRepository) Create(ctx context.Context, car *models.Car) error {
	if err := r.db.WithContext(ctx).Create(car).Error; err != nil {
		return errors.Wrap(translate(err, errs.ErrPlateTaken), "create car")
	}
	return nil
}

func (r *CarRepository) Update(ctx context.Context, car *models.Car) error {
	if err := r.db.WithContext(ctx).Save(car).Error; err != nil {
		return errors.Wrap(translate(err, errs.ErrPlateTaken), "update car")
	}
	return nil
}

// Delete удаляет машину, если на нее нет бронирований.
func (r *CarRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Booking{}).Where("car_id = ?", id).Count(&refs).Error; err != nil {
			return errors.Wrap(err, "count car bookings")
		}
		if refs > 0 {
			return errs.ErrCarInUse
		}
		res := tx.Delete(&models.Car{}, id)
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete car")
		}
		if res.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

func (r *CarRepository) Count(ctx context.Context, onlyAvailable bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Car{})
	if onlyAvailable {
		q = q.Where("availability = ?", true)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count cars")
	}
	return n, nil
}
