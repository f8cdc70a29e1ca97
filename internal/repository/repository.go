// Package repository хранит доступ к Postgres через gorm.
package repository

import (
	"car-rental-backend/internal/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translate приводит ошибки gorm к доменным ошибкам из errs.
func translate(err error, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.ErrNotFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	}
	return err
}
