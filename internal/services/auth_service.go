package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"
	"car-rental-backend/internal/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mocks/auth_service.go -package=mocks

type AdminRepository interface {
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, admin *models.Admin, afterCreate func() error) error
	GetByID(ctx context.Context, id uint) (models.Admin, error)
	FindByLogin(ctx context.Context, login string) (models.Admin, error)
	Verify(ctx context.Context, id uint, code string) (models.Admin, error)
}

type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// AuthService - регистрация и вход единственного администратора агентства.
type AuthService struct {
	admins AdminRepository
	mailer Mailer
	jwt    config.JWT
	log    *zap.Logger
}

func NewAuthService(admins AdminRepository, mailer Mailer, jwt config.JWT, log *zap.Logger) *AuthService {
	return &AuthService{admins: admins, mailer: mailer, jwt: jwt, log: log.Named("auth_service")}
}

// Register создает неподтвержденного администратора и отправляет код на email.
// Если письмо не ушло, запись откатывается. Возвращает id для шага подтверждения.
func (s *AuthService) Register(ctx context.Context, req models.AdminRegisterRequest) (uint, error) {
	exists, err := s.admins.Exists(ctx)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errs.ErrAdminExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return 0, err
	}
	code, err := generateVerificationCode()
	if err != nil {
		return 0, err
	}

	admin := models.Admin{
		LastName:         strings.TrimSpace(req.LastName),
		FirstName:        strings.TrimSpace(req.FirstName),
		AgencyName:       strings.TrimSpace(req.AgencyName),
		Address:          strings.TrimSpace(req.Address),
		Phone:            strings.TrimSpace(req.Phone),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		City:             strings.TrimSpace(req.City),
		Password:         hash,
		VerificationCode: &code,
		Role:             models.RoleAdmin,
	}
	err = s.admins.Create(ctx, &admin, func() error {
		return s.mailer.SendVerificationCode(ctx, admin.Email, code)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("admin registered, waiting for verification", zap.Uint("admin_id", admin.ID))
	return admin.ID, nil
}

// Verify подтверждает аккаунт кодом из письма и выдает токен.
func (s *AuthService) Verify(ctx context.Context, id uint, code string) (string, models.Admin, error) {
	admin, err := s.admins.Verify(ctx, id, strings.TrimSpace(code))
	if err != nil {
		return "", models.Admin{}, err
	}
	token, err := utils.GenerateJWT(admin.ID, models.RoleAdmin, s.jwt.Secret, s.jwt.TTL)
	if err != nil {
		return "", models.Admin{}, errors.Wrap(err, "sign token")
	}
	s.log.Info("admin verified", zap.Uint("admin_id", admin.ID))
	return token, admin, nil
}

// Login принимает фамилию или email и пароль.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, models.Admin, error) {
	admin, err := s.admins.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", models.Admin{}, errs.ErrInvalidCredentials
		}
		return "", models.Admin{}, err
	}
	// неподтвержденный аккаунт отклоняется до проверки пароля
	if !admin.IsVerified {
		return "", models.Admin{}, errs.ErrNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", models.Admin{}, errs.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.ID, models.RoleAdmin, s.jwt.Secret, s.jwt.TTL)
	if err != nil {
		return "", models.Admin{}, errors.Wrap(err, "sign token")
	}
	return token, admin, nil
}

func (s *AuthService) Profile(ctx context.Context, id uint) (models.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

// ValidateToken разбирает токен для websocket и middleware.
func (s *AuthService) ValidateToken(token string) (uint, string, error) {
	claims, err := utils.ValidateToken(token, s.jwt.Secret)
	if err != nil {
		return 0, "", err
	}
	return claims.ID, claims.Role, nil
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.Wrap(err, "generate verification code")
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
