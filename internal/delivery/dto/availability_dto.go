package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAvailabilityRequest struct {
	DoctorID   uuid.UUID `json:"doctorId" validate:"required"`
	DaysOfWeek []string  `json:"daysOfWeek" validate:"required,min=1,dive,required"` // MONDAY..SUNDAY
	StartTime  string    `json:"startTime" validate:"required"`                      // Format: HH:MM
	EndTime    string    `json:"endTime" validate:"required"`                        // Format: HH:MM
}

// Response DTOs

type AvailabilityResponse struct {
	ID         int64     `json:"id"`
	DoctorID   uuid.UUID `json:"doctorId"`
	DaysOfWeek []string  `json:"daysOfWeek"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type AvailabilityListResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Total          int                    `json:"total"`
}
