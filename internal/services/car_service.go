package services

import (
	"context"
	"strings"

	"car-rental-backend/internal/models"

	"go.uber.org/zap"
)

//go:generate mockgen -source=car_service.go -destination=mocks/car_service.go -package=mocks

type CarRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]models.Car, error)
	GetByID(ctx context.Context, id uint) (models.Car, error)
	Create(ctx context.Context, car *models.Car) error
	Update(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, id uint) error
}

// CarService - каталог машин. Публичный список кэшируется в Redis,
// любое изменение машины или бронирования сбрасывает кэш.
type CarService struct {
	cars  CarRepository
	cache *CacheService
	log   *zap.Logger
}

func NewCarService(cars CarRepository, cache *CacheService, log *zap.Logger) *CarService {
	return &CarService{cars: cars, cache: cache, log: log.Named("car_service")}
}

func (s *CarService) List(ctx context.Context, onlyAvailable bool) ([]models.Car, error) {
	key := CarsListKey(onlyAvailable)
	var cached []models.Car
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Warn("cars cache read failed", zap.Error(err))
	} else if found {
		return cached, nil
	}

	cars, err := s.cars.List(ctx, onlyAvailable)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, cars); err != nil {
		s.log.Warn("cars cache write failed", zap.Error(err))
	}
	return cars, nil
}

func (s *CarService) Get(ctx context.Context, id uint) (models.Car, error) {
	return s.cars.GetByID(ctx, id)
}

func (s *CarService) Create(ctx context.Context, req models.CarRequest) (models.Car, error) {
	car := models.Car{
		Name:         strings.TrimSpace(req.Name),
		Model:        strings.TrimSpace(req.Model),
		Plate:        strings.TrimSpace(req.Plate),
		PricePerDay:  req.PricePerDay,
		Availability: true,
		ImageURL:     req.ImageURL,
	}
	if req.Availability != nil {
		car.Availability = *req.Availability
	}
	if err := s.cars.Create(ctx, &car); err != nil {
		return models.Car{}, err
	}
	s.invalidate(ctx)
	return car, nil
}

// Update применяет частичное изменение: админка присылает либо всю машину, либо только {availability}.
func (s *CarService) Update(ctx context.Context, id uint, patch models.CarPatch) (models.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return models.Car{}, err
	}
	if patch.Name != nil {
		car.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Model != nil {
		car.Model = strings.TrimSpace(*patch.Model)
	}
	if patch.Plate != nil {
		car.Plate = strings.TrimSpace(*patch.Plate)
	}
	if patch.PricePerDay != nil {
		car.PricePerDay = *patch.PricePerDay
	}
	if patch.Availability != nil {
		car.Availability = *patch.Availability
	}
	if patch.ImageURL != nil {
		car.ImageURL = *patch.ImageURL
	}
	if err := s.cars.Update(ctx, &car); err != nil {
		return models.Car{}, err
	}
	s.invalidate(ctx)
	return car, nil
}

func (s *CarService) Delete(ctx context.Context, id uint) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// PublishBookingEvent сбрасывает кэш: переход бронирования мог изменить доступность машины.
func (s *CarService) PublishBookingEvent(ctx context.Context, _ models.BookingEvent) error {
	return s.cache.Delete(ctx, CarsListKey(true), CarsListKey(false))
}

func (s *CarService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, CarsListKey(true), CarsListKey(false)); err != nil {
		s.log.Warn("cars cache invalidation failed", zap.Error(err))
	}
}
