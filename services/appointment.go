package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/repository"
	"go.uber.org/zap"
)

// AppointmentService orchestrates the appointment lifecycle: every
// time-affecting mutation runs through the availability checker first, and
// status changes go through the transition table.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	catalog      repository.ServiceRepository
	availability *AvailabilityChecker
	log          *zap.Logger

	// The check-then-act between the availability query and the write is
	// serialized per doctor so two concurrent requests cannot both grab
	// the same slot.
	doctorLocks sync.Map // uint -> *sync.Mutex
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	catalog repository.ServiceRepository,
	availability *AvailabilityChecker,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		catalog:      catalog,
		availability: availability,
		log:          log,
	}
}

func (s *AppointmentService) lockDoctor(doctorID uint) func() {
	mu, _ := s.doctorLocks.LoadOrStore(doctorID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// Create books a new appointment. The slot is validated against the
// doctor's working hours and existing bookings; on success the appointment
// is persisted with status NEW.
func (s *AppointmentService) Create(appointment *models.Appointment) (*models.Appointment, error) {
	if appointment.PatientName == "" {
		return nil, fmt.Errorf("%w: patient name is required", models.ErrValidation)
	}

	service, err := s.catalog.FindByID(appointment.ServiceID)
	if err != nil {
		return nil, err
	}

	unlock := s.lockDoctor(appointment.DoctorID)
	defer unlock()

	available, err := s.availability.IsAvailable(appointment.DoctorID, appointment.DateTime, service.Duration, nil)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, models.ErrSlotConflict
	}

	appointment.Status = models.StatusNew
	if err := s.appointments.Save(appointment); err != nil {
		s.log.Error("failed to create appointment", zap.Error(err))
		return nil, err
	}

	s.log.Info("appointment created",
		zap.Uint("appointment_id", appointment.ID),
		zap.Uint("doctor_id", appointment.DoctorID),
		zap.Time("date_time", appointment.DateTime))

	return s.appointments.FindByID(appointment.ID)
}

// Update replaces an existing appointment. The slot is re-validated only
// when the doctor, service or start time changed, so edits that touch only
// the patient name or status can never hit a slot conflict.
func (s *AppointmentService) Update(appointment *models.Appointment) (*models.Appointment, error) {
	existing, err := s.appointments.FindByID(appointment.ID)
	if err != nil {
		return nil, err
	}

	if appointment.PatientName == "" {
		return nil, fmt.Errorf("%w: patient name is required", models.ErrValidation)
	}
	if appointment.Status == "" {
		appointment.Status = existing.Status
	} else if !appointment.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, appointment.Status)
	}

	slotChanged := !existing.DateTime.Equal(appointment.DateTime) ||
		existing.DoctorID != appointment.DoctorID ||
		existing.ServiceID != appointment.ServiceID

	if slotChanged {
		service, err := s.catalog.FindByID(appointment.ServiceID)
		if err != nil {
			return nil, err
		}

		unlock := s.lockDoctor(appointment.DoctorID)
		defer unlock()

		available, err := s.availability.IsAvailable(appointment.DoctorID, appointment.DateTime, service.Duration, &appointment.ID)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, models.ErrSlotConflict
		}
	}

	appointment.CreatedAt = existing.CreatedAt
	if err := s.appointments.Save(appointment); err != nil {
		s.log.Error("failed to update appointment", zap.Uint("appointment_id", appointment.ID), zap.Error(err))
		return nil, err
	}

	return s.appointments.FindByID(appointment.ID)
}

// UpdateStatus advances the lifecycle. Illegal transitions are rejected;
// the slot is never re-checked because a status change never moves it.
func (s *AppointmentService) UpdateStatus(id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}

	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot transition from %s to %s", models.ErrValidation, appointment.Status, status)
	}

	appointment.Status = status
	if err := s.appointments.Save(appointment); err != nil {
		return nil, err
	}

	s.log.Info("appointment status changed",
		zap.Uint("appointment_id", id),
		zap.String("status", string(status)))

	return appointment, nil
}

// Delete removes an appointment unconditionally.
func (s *AppointmentService) Delete(id uint) error {
	exists, err := s.appointments.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: appointment %d", models.ErrNotFound, id)
	}
	return s.appointments.DeleteByID(id)
}

func (s *AppointmentService) Get(id uint) (*models.Appointment, error) {
	return s.appointments.FindByID(id)
}

func (s *AppointmentService) List() ([]models.Appointment, error) {
	return s.appointments.FindAll()
}

// ListByDateRange returns appointments starting within [start, end],
// inclusive on both ends.
func (s *AppointmentService) ListByDateRange(start, end time.Time) ([]models.Appointment, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end is before start", models.ErrValidation)
	}
	return s.appointments.FindByDateRange(start, end)
}

// CheckAvailability exposes the availability predicate to the boundary
// layer, with no exclusion.
func (s *AppointmentService) CheckAvailability(doctorID uint, start time.Time, durationMins int) (bool, error) {
	return s.availability.IsAvailable(doctorID, start, durationMins, nil)
}
