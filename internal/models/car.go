package models

import "time"

type Car struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;type:varchar(255)"`
	Model        string    `json:"model" gorm:"not null;type:varchar(255)"`
	Plate        string    `json:"plate" gorm:"uniqueIndex;not null;type:varchar(32)"`
	PricePerDay  float64   `json:"price_per_day" gorm:"type:numeric(10,2);not null"`
	Availability bool      `json:"availability" gorm:"not null;default:true"`
	ImageURL     string    `json:"image_url" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CarResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Model        string  `json:"model"`
	Plate        string  `json:"plate"`
	PricePerDay  float64 `json:"price_per_day"`
	Availability bool    `json:"availability"`
	ImageURL     string  `json:"image_url,omitempty"`
}

func (c *Car) ToResponse() CarResponse {
	return CarResponse{
		ID:           c.ID,
		Name:         c.Name,
		Model:        c.Model,
		Plate:        c.Plate,
		PricePerDay:  c.PricePerDay,
		Availability: c.Availability,
		ImageURL:     c.ImageURL,
	}
}

// CarRequest используется для создания и полного обновления машины
type CarRequest struct {
	Name         string  `json:"name" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	Plate        string  `json:"plate" binding:"required"`
	PricePerDay  float64 `json:"price_per_day" binding:"required,gt=0"`
	Availability *bool   `json:"availability"`
	ImageURL     string  `json:"image_url"`
}

// CarPatch - частичное обновление; админка присылает только {availability}
type CarPatch struct {
	Name         *string  `json:"name"`
	Model        *string  `json:"model"`
	Plate        *string  `json:"plate"`
	PricePerDay  *float64 `json:"price_per_day" binding:"omitempty,gt=0"`
	Availability *bool    `json:"availability"`
	ImageURL     *string  `json:"image_url"`
}
