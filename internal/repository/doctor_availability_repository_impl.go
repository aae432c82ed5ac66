package repository

import (
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"
	domainRepo "github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorAvailabilityRepository struct{}

func NewDoctorAvailabilityRepository() domainRepo.DoctorAvailabilityRepository {
	return &doctorAvailabilityRepository{}
}

func (r *doctorAvailabilityRepository) Create(db *gorm.DB, availability *entity.DoctorAvailability) error {
	return db.Create(availability).Error
}

func (r *doctorAvailabilityRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := db.Where("doctor_id = ?", doctorID).Order("start_time ASC").Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *doctorAvailabilityRepository) ExistsByDoctorID(db *gorm.DB, doctorID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.DoctorAvailability{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorAvailabilityRepository) DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	affected := db.Where("doctor_id = ?", doctorID).Delete(&entity.DoctorAvailability{})
	return affected.RowsAffected, affected.Error
}
