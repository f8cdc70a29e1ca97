package repository

import (
	"context"

	"car-rental-backend/internal/models"
)

// StatsRepository собирает агрегаты для панели администратора.
type StatsRepository struct {
	cars     *CarRepository
	users    *UserRepository
	bookings *BookingRepository
}

func NewStatsRepository(cars *CarRepository, users *UserRepository, bookings *BookingRepository) *StatsRepository {
	return &StatsRepository{cars: cars, users: users, bookings: bookings}
}

func (r *StatsRepository) CountCars(ctx context.Context, onlyAvailable bool) (int64, error) {
	return r.cars.Count(ctx, onlyAvailable)
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.users.Count(ctx)
}

func (r *StatsRepository) CountBookingsByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	return r.bookings.CountByStatus(ctx)
}

func (r *StatsRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	return r.bookings.CompletedRevenue(ctx)
}
