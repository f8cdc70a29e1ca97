package handlers

import (
	"strings"

	"car-rental-backend/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators добавляет правила валидации запросов в движок gin.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		return err
	}
	return v.RegisterValidation("locale", validateLocale)
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	_, err := models.ParseBookingStatus(fl.Field().String())
	return err == nil
}

func validateLocale(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", "fr", "en", "ar":
		return true
	}
	return false
}
