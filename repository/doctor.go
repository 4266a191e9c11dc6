package repository

import (
	"errors"
	"fmt"

	"github.com/medcare/medcare-server/models"
	"gorm.io/gorm"
)

type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) Save(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

func (r *GormDoctorRepository) FindByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: doctor %d", models.ErrNotFound, id)
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *GormDoctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *GormDoctorRepository) FindBySpecialization(specialization string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Where("specialization = ?", specialization).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *GormDoctorRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Doctor{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDoctorRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}
