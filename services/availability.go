package services

import (
	"fmt"
	"time"

	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/repository"
)

// AvailabilityChecker decides whether a doctor can take an appointment at a
// candidate time. It is a pure read over the doctor directory and the
// appointment store and never mutates anything.
type AvailabilityChecker struct {
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
}

func NewAvailabilityChecker(doctors repository.DoctorRepository, appointments repository.AppointmentRepository) *AvailabilityChecker {
	return &AvailabilityChecker{doctors: doctors, appointments: appointments}
}

// IsAvailable reports whether the doctor can take [start, start+duration).
// excludeID, when non-nil, removes that appointment from the overlap check
// so a move can be validated against everything but itself.
//
// A missing doctor surfaces as ErrNotFound. A malformed stored work-hours
// string makes the slot unavailable without an error: the check fails
// closed rather than booking a doctor with an unusable schedule.
func (c *AvailabilityChecker) IsAvailable(doctorID uint, start time.Time, durationMins int, excludeID *uint) (bool, error) {
	if durationMins <= 0 {
		return false, fmt.Errorf("%w: duration must be positive, got %d", models.ErrValidation, durationMins)
	}

	doctor, err := c.doctors.FindByID(doctorID)
	if err != nil {
		return false, err
	}

	window, err := doctor.Window()
	if err != nil {
		return false, nil
	}

	// Window check is time-of-day only; a candidate that would run past
	// midnight ends beyond any window and is rejected by the same rule.
	startMin := start.Hour()*60 + start.Minute()
	if !window.Contains(startMin, startMin+durationMins) {
		return false, nil
	}

	end := start.Add(time.Duration(durationMins) * time.Minute)
	overlapping, err := c.appointments.FindOverlapping(doctorID, start, end, excludeID)
	if err != nil {
		return false, err
	}

	return len(overlapping) == 0, nil
}
