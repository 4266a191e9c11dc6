package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusNew       AppointmentStatus = "NEW"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCanceled  AppointmentStatus = "CANCELED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// State transition possibilities:
//
//	NEW → CONFIRMED → COMPLETED
//	NEW → CANCELED
//	CONFIRMED → CANCELED
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	allowed := map[AppointmentStatus][]AppointmentStatus{
		StatusNew:       {StatusConfirmed, StatusCanceled},
		StatusConfirmed: {StatusCompleted, StatusCanceled},
		StatusCompleted: {},
		StatusCanceled:  {},
	}

	for _, n := range allowed[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Blocking reports whether an appointment in this status still holds its
// time slot. Canceled appointments release the slot.
func (s AppointmentStatus) Blocking() bool {
	return s != StatusCanceled
}

type Appointment struct {
	gorm.Model
	PatientName string            `json:"patient_name"`
	DateTime    time.Time         `json:"date_time"`
	Status      AppointmentStatus `json:"status"`
	DoctorID    uint              `json:"doctor_id"`
	Doctor      Doctor            `json:"doctor" gorm:"foreignKey:DoctorID"`
	ServiceID   uint              `json:"service_id"`
	Service     MedicalService    `json:"service" gorm:"foreignKey:ServiceID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusNew
	}
	return nil
}

// EndTime is the end of the occupied interval [DateTime, DateTime+duration).
// The Service association must be loaded.
func (a *Appointment) EndTime() time.Time {
	return a.DateTime.Add(time.Duration(a.Service.Duration) * time.Minute)
}
