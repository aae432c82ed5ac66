package converter

import (
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/dto"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                   appointment.ID,
		DoctorID:             appointment.DoctorID,
		PatientID:            appointment.PatientID,
		DateTime:             appointment.DateTime.Format("2006-01-02T15:04:05"),
		Status:               string(appointment.Status),
		Description:          appointment.Description,
		PaymentTransactionID: appointment.PaymentTransactionID,
		CreatedAt:            appointment.CreatedAt,
		UpdatedAt:            appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
