package services

import (
	"fmt"

	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/repository"
)

// DoctorService manages the doctor directory. Work-hours strings are
// validated at write time so a malformed window is rejected up front
// instead of silently failing every later availability check.
type DoctorService struct {
	doctors repository.DoctorRepository
}

func NewDoctorService(doctors repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctors: doctors}
}

func validateDoctor(doctor *models.Doctor) error {
	if doctor.Name == "" {
		return fmt.Errorf("%w: doctor name is required", models.ErrValidation)
	}
	if _, err := models.ParseTimeWindow(doctor.WorkHours); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

func (s *DoctorService) Create(doctor *models.Doctor) (*models.Doctor, error) {
	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}
	if err := s.doctors.Save(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) Update(doctor *models.Doctor) (*models.Doctor, error) {
	exists, err := s.doctors.ExistsByID(doctor.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: doctor %d", models.ErrNotFound, doctor.ID)
	}
	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}
	if err := s.doctors.Save(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) Delete(id uint) error {
	exists, err := s.doctors.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: doctor %d", models.ErrNotFound, id)
	}
	return s.doctors.DeleteByID(id)
}

func (s *DoctorService) Get(id uint) (*models.Doctor, error) {
	return s.doctors.FindByID(id)
}

func (s *DoctorService) List() ([]models.Doctor, error) {
	return s.doctors.FindAll()
}

func (s *DoctorService) ListBySpecialization(specialization string) ([]models.Doctor, error) {
	return s.doctors.FindBySpecialization(specialization)
}
