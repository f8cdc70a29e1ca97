package services_test

import (
	"context"
	"testing"
	"time"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"
	"car-rental-backend/internal/services"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "car-rental-backend/internal/services/mocks"
)

func newCarService(t *testing.T) (*services.CarService, *service_mocks.MockCarRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := service_mocks.NewMockCarRepository(gomock.NewController(t))
	cache := services.NewCacheService(client, time.Minute)
	return services.NewCarService(repo, cache, zap.NewNop()), repo, mr
}

func TestCarService_ListCached(t *testing.T) {
	t.Parallel()
	svc, repo, mr := newCarService(t)
	ctx := context.Background()

	cars := []models.Car{{ID: 1, Name: "Dacia Logan", Availability: true}}
	repo.EXPECT().List(gomock.Any(), true).Return(cars, nil).Times(1)

	got, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Equal(t, cars[0].Name, got[0].Name)
	require.True(t, mr.Exists(services.CarsListKey(true)))

	got, err = svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCarService_WritesInvalidateCache(t *testing.T) {
	t.Parallel()
	svc, repo, mr := newCarService(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(services.CarsListKey(true), "[]"))
	require.NoError(t, mr.Set(services.CarsListKey(false), "[]"))

	repo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(models.Car{ID: 1, Name: "Clio", PricePerDay: 250, Availability: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car *models.Car) error {
			require.False(t, car.Availability)
			require.Equal(t, "Clio", car.Name)
			return nil
		})

	unavailable := false
	car, err := svc.Update(ctx, 1, models.CarPatch{Availability: &unavailable})
	require.NoError(t, err)
	require.False(t, car.Availability)
	require.False(t, mr.Exists(services.CarsListKey(true)))
	require.False(t, mr.Exists(services.CarsListKey(false)))
}

func TestCarService_BookingEventInvalidatesCache(t *testing.T) {
	t.Parallel()
	svc, _, mr := newCarService(t)

	require.NoError(t, mr.Set(services.CarsListKey(true), "[]"))
	require.NoError(t, svc.PublishBookingEvent(context.Background(), models.BookingEvent{BookingID: 1}))
	require.False(t, mr.Exists(services.CarsListKey(true)))
}

func TestCarService_Create(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newCarService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car *models.Car) error {
			require.True(t, car.Availability)
			require.Equal(t, "12345-A-6", car.Plate)
			car.ID = 3
			return nil
		})

	car, err := svc.Create(context.Background(), models.CarRequest{Name: "Logan", Model: "2022", Plate: " 12345-A-6 ", PricePerDay: 200})
	require.NoError(t, err)
	require.Equal(t, uint(3), car.ID)
}

func TestCarService_DeleteInUse(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newCarService(t)
	repo.EXPECT().Delete(gomock.Any(), uint(3)).Return(errs.ErrCarInUse)

	require.ErrorIs(t, svc.Delete(context.Background(), 3), errs.ErrCarInUse)
}
