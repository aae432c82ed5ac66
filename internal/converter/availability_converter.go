package converter

import (
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/dto"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"
)

// AvailabilityToResponse converts a DoctorAvailability entity to AvailabilityResponse DTO
func AvailabilityToResponse(availability *entity.DoctorAvailability) *dto.AvailabilityResponse {
	if availability == nil {
		return nil
	}

	return &dto.AvailabilityResponse{
		ID:         availability.ID,
		DoctorID:   availability.DoctorID,
		DaysOfWeek: []string(availability.DaysOfWeek),
		StartTime:  availability.StartTime,
		EndTime:    availability.EndTime,
		CreatedAt:  availability.CreatedAt,
		UpdatedAt:  availability.UpdatedAt,
	}
}

// AvailabilitiesToResponses converts a slice of DoctorAvailability entities to response DTOs
func AvailabilitiesToResponses(availabilities []entity.DoctorAvailability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(availabilities))
	for i, availability := range availabilities {
		resp := AvailabilityToResponse(&availability)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
