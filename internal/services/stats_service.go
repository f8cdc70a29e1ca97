package services

import (
	"context"

	"car-rental-backend/internal/models"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=stats_service.go -destination=mocks/stats_service.go -package=mocks

type StatsRepository interface {
	CountCars(ctx context.Context, onlyAvailable bool) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountBookingsByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
}

type StatsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Dashboard собирает показатели панели администратора параллельными запросами.
func (s *StatsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.Cars, err = s.repo.CountCars(ctx, false)
		return err
	})
	g.Go(func() (err error) {
		stats.AvailableCars, err = s.repo.CountCars(ctx, true)
		return err
	})
	g.Go(func() (err error) {
		stats.Users, err = s.repo.CountUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.BookingsByStatus, err = s.repo.CountBookingsByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.CompletedRevenue, err = s.repo.CompletedRevenue(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.BookingsByStatus == nil {
		stats.BookingsByStatus = make(map[models.BookingStatus]int64, 4)
	}
	for _, status := range []models.BookingStatus{
		models.BookingStatusPending, models.BookingStatusApproved,
		models.BookingStatusCompleted, models.BookingStatusCancelled,
	} {
		if _, ok := stats.BookingsByStatus[status]; !ok {
			stats.BookingsByStatus[status] = 0
		}
	}
	return stats, nil
}
