package repository

import (
	"time"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorAndDateRange(db *gorm.DB, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)
	ExistsByDoctorAndDateTime(db *gorm.DB, doctorID uuid.UUID, dateTime time.Time) (bool, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error)
}
