package repository

import (
	"context"
	"time"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Exists(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "count admins")
	}
	return n > 0, nil
}

// Create сохраняет администратора и вызывает afterCreate внутри той же транзакции:
// если afterCreate (отправка письма) вернул ошибку, запись откатывается.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin, afterCreate func() error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Admin{}).Count(&n).Error; err != nil {
			return errors.Wrap(err, "count admins")
		}
		if n > 0 {
			return errs.ErrAdminExists
		}
		if err := tx.Create(admin).Error; err != nil {
			return errors.Wrap(translate(err, errs.ErrAdminExists), "create admin")
		}
		if afterCreate != nil {
			return afterCreate()
		}
		return nil
	})
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return models.Admin{}, errors.Wrapf(translate(err, nil), "get admin %d", id)
	}
	return admin, nil
}

// FindByLogin ищет администратора по фамилии или email.
func (r *AdminRepository) FindByLogin(ctx context.Context, login string) (models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).
		Where("last_name = ? OR email = ?", login, login).
		First(&admin).Error
	if err != nil {
		return models.Admin{}, errors.Wrap(translate(err, nil), "find admin")
	}
	return admin, nil
}

// Verify помечает аккаунт подтвержденным и стирает одноразовый код.
func (r *AdminRepository) Verify(ctx context.Context, id uint, code string) (models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Admin{}).
			Where("id = ? AND verification_code = ?", id, code).
			Updates(map[string]interface{}{
				"is_verified":       true,
				"verification_code": gorm.Expr("NULL"),
				"updated_at":        time.Now(),
			})
		if res.Error != nil {
			return errors.Wrap(res.Error, "verify admin")
		}
		if res.RowsAffected == 0 {
			return errs.ErrInvalidCode
		}
		return tx.First(&admin, id).Error
	})
	return admin, err
}
