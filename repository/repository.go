package repository

import (
	"time"

	"github.com/medcare/medcare-server/models"
)

// DoctorRepository is the doctor directory store.
type DoctorRepository interface {
	Save(doctor *models.Doctor) error
	FindByID(id uint) (*models.Doctor, error)
	FindAll() ([]models.Doctor, error)
	FindBySpecialization(specialization string) ([]models.Doctor, error)
	ExistsByID(id uint) (bool, error)
	DeleteByID(id uint) error
}

// ServiceRepository is the medical service catalog store.
type ServiceRepository interface {
	Save(service *models.MedicalService) error
	FindByID(id uint) (*models.MedicalService, error)
	FindAll() ([]models.MedicalService, error)
	ExistsByID(id uint) (bool, error)
	DeleteByID(id uint) error
}

// AppointmentRepository is the appointment store.
type AppointmentRepository interface {
	Save(appointment *models.Appointment) error
	FindByID(id uint) (*models.Appointment, error)
	ExistsByID(id uint) (bool, error)
	DeleteByID(id uint) error
	FindAll() ([]models.Appointment, error)

	// FindByDateRange returns appointments whose start time falls in
	// [start, end], both ends inclusive.
	FindByDateRange(start, end time.Time) ([]models.Appointment, error)

	// FindOverlapping returns the doctor's blocking (non-canceled)
	// appointments whose occupied interval intersects the half-open
	// candidate interval [start, end). A non-nil excludeID is left out of
	// the result, which lets an appointment be re-validated against
	// everything but itself.
	FindOverlapping(doctorID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error)

	// FindByStatusAndDateRange returns appointments in the given status
	// starting within [start, end], ordered by start time.
	FindByStatusAndDateRange(status models.AppointmentStatus, start, end time.Time) ([]models.Appointment, error)
}

// UserRepository is the staff account store.
type UserRepository interface {
	Save(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	ExistsByID(id uint) (bool, error)
	ExistsByUsername(username string) (bool, error)
	FindAll() ([]models.User, error)
	DeleteByID(id uint) error
}
