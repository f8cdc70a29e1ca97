package models

import "time"

// Admin - единственный администратор агентства.
// Уникальный индекс по role не дает создать вторую запись.
type Admin struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	LastName         string    `json:"lastName" gorm:"not null;type:varchar(255)"`
	FirstName        string    `json:"firstName" gorm:"not null;type:varchar(255)"`
	AgencyName       string    `json:"agencyName" gorm:"not null;type:varchar(255)"`
	Address          string    `json:"address" gorm:"not null;type:varchar(255)"`
	Phone            string    `json:"phone" gorm:"not null;type:varchar(32)"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null;type:varchar(255)"`
	City             string    `json:"city" gorm:"not null;type:varchar(255)"`
	Password         string    `json:"-" gorm:"not null"`
	IsVerified       bool      `json:"isVerified" gorm:"not null;default:false"`
	VerificationCode *string   `json:"-" gorm:"type:varchar(16)"`
	Role             string    `json:"role" gorm:"uniqueIndex;not null;default:'admin';type:varchar(20)"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type AdminRegisterRequest struct {
	LastName   string `json:"lastName" binding:"required"`
	FirstName  string `json:"firstName" binding:"required"`
	AgencyName string `json:"agencyName" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	City       string `json:"city" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
}

type AdminVerifyRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// AdminLoginRequest: login - фамилия администратора или email
type AdminLoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminResponse struct {
	ID        uint   `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		LastName:  a.LastName,
		FirstName: a.FirstName,
		Email:     a.Email,
		Role:      RoleAdmin,
	}
}
