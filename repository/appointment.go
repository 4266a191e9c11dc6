package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/medcare/medcare-server/models"
	"gorm.io/gorm"
)

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *GormAppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Doctor").Preload("Service").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment %d", models.ErrNotFound, id)
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Appointment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormAppointmentRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}

func (r *GormAppointmentRepository) FindAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Service").Order("id asc").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) FindByDateRange(start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Service").
		Where("date_time BETWEEN ? AND ?", start, end).
		Order("id asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindOverlapping locks the matching rows so a concurrent booking for the
// same doctor serializes on the conflict check. The occupied interval of a
// stored appointment is [date_time, date_time + service duration); two
// half-open intervals overlap iff each starts before the other ends.
func (r *GormAppointmentRepository) FindOverlapping(doctorID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error) {
	var exclude uint
	if excludeID != nil {
		exclude = *excludeID
	}

	var appointments []models.Appointment
	err := r.db.Raw(`
		SELECT appointments.*
		FROM appointments
		JOIN medical_services ON medical_services.id = appointments.service_id
		WHERE appointments.doctor_id = ?
		  AND appointments.deleted_at IS NULL
		  AND appointments.status <> ?
		  AND appointments.date_time < ?
		  AND appointments.date_time + make_interval(mins => medical_services.duration) > ?
		  AND (? = 0 OR appointments.id <> ?)
		FOR UPDATE OF appointments
	`, doctorID, models.StatusCanceled, end, start, exclude, exclude).
		Scan(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) FindByStatusAndDateRange(status models.AppointmentStatus, start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Service").
		Where("status = ? AND date_time BETWEEN ? AND ?", status, start, end).
		Order("date_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
