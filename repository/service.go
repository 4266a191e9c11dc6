package repository

import (
	"errors"
	"fmt"

	"github.com/medcare/medcare-server/models"
	"gorm.io/gorm"
)

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) Save(service *models.MedicalService) error {
	return r.db.Save(service).Error
}

func (r *GormServiceRepository) FindByID(id uint) (*models.MedicalService, error) {
	var service models.MedicalService
	if err := r.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: medical service %d", models.ErrNotFound, id)
		}
		return nil, err
	}
	return &service, nil
}

func (r *GormServiceRepository) FindAll() ([]models.MedicalService, error) {
	var services []models.MedicalService
	if err := r.db.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormServiceRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.MedicalService{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormServiceRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.MedicalService{}, id).Error
}
