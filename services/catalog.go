package services

import (
	"fmt"

	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/repository"
)

// CatalogService manages the medical service catalog. Durations drive the
// occupied interval of every appointment, so a service must carry a
// positive duration and a non-negative price before it is accepted.
type CatalogService struct {
	catalog repository.ServiceRepository
}

func NewCatalogService(catalog repository.ServiceRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func validateService(service *models.MedicalService) error {
	if service.Name == "" {
		return fmt.Errorf("%w: service name is required", models.ErrValidation)
	}
	if service.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if service.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", models.ErrValidation)
	}
	return nil
}

func (s *CatalogService) Create(service *models.MedicalService) (*models.MedicalService, error) {
	if err := validateService(service); err != nil {
		return nil, err
	}
	if err := s.catalog.Save(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) Update(service *models.MedicalService) (*models.MedicalService, error) {
	exists, err := s.catalog.ExistsByID(service.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: medical service %d", models.ErrNotFound, service.ID)
	}
	if err := validateService(service); err != nil {
		return nil, err
	}
	if err := s.catalog.Save(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) Delete(id uint) error {
	exists, err := s.catalog.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: medical service %d", models.ErrNotFound, id)
	}
	return s.catalog.DeleteByID(id)
}

func (s *CatalogService) Get(id uint) (*models.MedicalService, error) {
	return s.catalog.FindByID(id)
}

func (s *CatalogService) List() ([]models.MedicalService, error) {
	return s.catalog.FindAll()
}
