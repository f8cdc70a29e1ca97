package handlers

import (
	"context"

	"car-rental-backend/internal/models"
	"car-rental-backend/internal/services"
)

//go:generate mockgen -source=handlers.go -destination=mocks/handlers.go -package=mocks

type AuthService interface {
	Register(ctx context.Context, req models.AdminRegisterRequest) (uint, error)
	Verify(ctx context.Context, id uint, code string) (string, models.Admin, error)
	Login(ctx context.Context, login, password string) (string, models.Admin, error)
	Profile(ctx context.Context, id uint) (models.Admin, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint) (models.User, error)
	Create(ctx context.Context, req models.UserRequest) (models.User, error)
	Update(ctx context.Context, id uint, req models.UserRequest) (models.User, error)
	Delete(ctx context.Context, id uint) error
	Register(ctx context.Context, req models.UserRegisterRequest) (string, models.User, error)
	Login(ctx context.Context, req models.UserLoginRequest) (string, models.User, error)
}

type CarService interface {
	List(ctx context.Context, onlyAvailable bool) ([]models.Car, error)
	Get(ctx context.Context, id uint) (models.Car, error)
	Create(ctx context.Context, req models.CarRequest) (models.Car, error)
	Update(ctx context.Context, id uint, patch models.CarPatch) (models.Car, error)
	Delete(ctx context.Context, id uint) error
}

type BookingService interface {
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Booking, error)
	Get(ctx context.Context, id uint) (models.Booking, error)
	Create(ctx context.Context, req models.BookingRequest, actor services.Actor, locale string) (services.BookingResult, error)
	Replace(ctx context.Context, id uint, req models.BookingRequest, locale string) (services.BookingResult, error)
	Transition(ctx context.Context, id uint, target models.BookingStatus, locale string) (services.BookingResult, error)
	Contract(ctx context.Context, id uint) (services.ContractLayout, []byte, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}
