package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs
// Field names follow the wire format shared with the frontend and the
// other services (camelCase, ISO-8601 local date time).

type CreateAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctorId" validate:"required"`
	PatientID   uuid.UUID `json:"patientId" validate:"required"`
	DateTime    string    `json:"dateTime" validate:"required"` // Format: 2006-01-02T15:04:05
	Description string    `json:"description" validate:"max=2000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                   int64     `json:"id"`
	DoctorID             uuid.UUID `json:"doctorId"`
	PatientID            uuid.UUID `json:"patientId"`
	DateTime             string    `json:"dateTime"`
	Status               string    `json:"status"`
	Description          string    `json:"description,omitempty"`
	PaymentTransactionID *int64    `json:"paymentTransactionId,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
