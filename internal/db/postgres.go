package db

import (
	"fmt"
	"time"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/db/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DSN(cfg config.Database) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// ConnectWithRetry открывает соединение с Postgres, повторяя попытки пока база поднимается.
func ConnectWithRetry(cfg config.Database, maxAttempts int, delay time.Duration, log *zap.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < maxAttempts; i++ {
		db, err = gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Error),
			TranslateError: true,
		})
		if err == nil {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, errors.Wrap(err, "sql.DB")
			}
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
			sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
			return db, nil
		}
		log.Warn("db connect attempt failed",
			zap.Int("attempt", i+1), zap.Int("max", maxAttempts), zap.Error(err))
		time.Sleep(delay)
	}
	return nil, errors.Wrapf(err, "db connect after %d attempts", maxAttempts)
}

// Migrate применяет встроенные SQL миграции goose.
func Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "sql.DB")
	}
	goose.SetBaseFS(migrations.MigrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return errors.Wrap(err, "goose up")
	}
	return nil
}
