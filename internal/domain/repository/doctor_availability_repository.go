package repository

import (
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorAvailabilityRepository interface {
	Create(db *gorm.DB, availability *entity.DoctorAvailability) error
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAvailability, error)
	ExistsByDoctorID(db *gorm.DB, doctorID uuid.UUID) (bool, error)
	DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error)
}
