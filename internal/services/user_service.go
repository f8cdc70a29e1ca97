package services

import (
	"context"
	"strings"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"
	"car-rental-backend/internal/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mocks/user_service.go -package=mocks

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// UserService - клиенты агентства: CRUD для администратора и вход для самих клиентов.
type UserService struct {
	users UserRepository
	jwt   config.JWT
	log   *zap.Logger
}

func NewUserService(users UserRepository, jwt config.JWT, log *zap.Logger) *UserService {
	return &UserService{users: users, jwt: jwt, log: log.Named("user_service")}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create заводит клиента от имени администратора; пароль необязателен.
func (s *UserService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	user := models.User{
		Name:  strings.TrimSpace(req.Name),
		Email: normalizeEmail(req.Email),
		Phone: strings.TrimSpace(req.Phone),
		Role:  models.RoleClient,
	}
	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req models.UserRequest) (models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Name = strings.TrimSpace(req.Name)
	user.Email = normalizeEmail(req.Email)
	user.Phone = strings.TrimSpace(req.Phone)
	if req.Password != "" {
		if user.Password, err = hashPassword(req.Password); err != nil {
			return models.User{}, err
		}
	}
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

// Register - самостоятельная регистрация клиента, сразу выдает токен.
func (s *UserService) Register(ctx context.Context, req models.UserRegisterRequest) (string, models.User, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return "", models.User{}, err
	}
	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Password: hash,
		Role:     models.RoleClient,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return "", models.User{}, err
	}

	token, err := utils.GenerateJWT(user.ID, models.RoleClient, s.jwt.Secret, s.jwt.TTL)
	if err != nil {
		return "", models.User{}, errors.Wrap(err, "sign token")
	}
	s.log.Info("client registered", zap.Uint("user_id", user.ID))
	return token, user, nil
}

func (s *UserService) Login(ctx context.Context, req models.UserLoginRequest) (string, models.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", models.User{}, errs.ErrInvalidCredentials
		}
		return "", models.User{}, err
	}
	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return "", models.User{}, errs.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, models.RoleClient, s.jwt.Secret, s.jwt.TTL)
	if err != nil {
		return "", models.User{}, errors.Wrap(err, "sign token")
	}
	return token, user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
