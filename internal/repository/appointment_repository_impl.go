package repository

import (
	"errors"
	"time"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"
	domainRepo "github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ?", doctorID).Order("date_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ?", patientID).Order("date_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByDoctorAndDateRange returns appointments in [start, end).
func (r *appointmentRepository) FindByDoctorAndDateRange(db *gorm.DB, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND date_time >= ? AND date_time < ?", doctorID, start, end).
		Order("date_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsByDoctorAndDateTime(db *gorm.DB, doctorID uuid.UUID, dateTime time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date_time = ?", doctorID, dateTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus performs a single UPDATE and reports affected rows:
// 1 = updated, 0 = unknown appointment id.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
