package models

import (
	"gorm.io/gorm"
)

type MedicalService struct {
	gorm.Model
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // Appointment length in minutes
}
