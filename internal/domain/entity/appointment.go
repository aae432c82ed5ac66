package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// appointmentStatusOrder fixes the ordinal wire codes used by the
// status-update endpoint: 0=PENDING, 1=CONFIRMED, 2=CANCELLED, 3=COMPLETED.
var appointmentStatusOrder = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCancelled,
	AppointmentStatusCompleted,
}

// AppointmentStatusFromNumber resolves an ordinal status code.
func AppointmentStatusFromNumber(n int) (AppointmentStatus, bool) {
	if n < 0 || n >= len(appointmentStatusOrder) {
		return "", false
	}
	return appointmentStatusOrder[n], true
}

// Appointment is the durable record of a booked slot. The composite
// (doctor_id, date_time) index is intentionally non-unique: the booking
// path does not enforce exclusivity on (doctor, instant).
type Appointment struct {
	ID                   int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	DateTime             time.Time         `gorm:"not null;index:idx_appointments_doctor_datetime" json:"date_time"`
	PatientID            uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID             uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_datetime" json:"doctor_id"`
	Status               AppointmentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Description          string            `gorm:"type:varchar(2000)" json:"description,omitempty"`
	PaymentTransactionID *int64            `json:"payment_transaction_id,omitempty"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
