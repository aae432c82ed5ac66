package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/dto"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/usecase"
	"github.com/AMIROUNI/SymptomCheck-sub001/pkg/response"
	"github.com/AMIROUNI/SymptomCheck-sub001/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment books a time slot. The caller always receives either
// the created appointment or a specific rejection reason.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, "Invalid date time format, use 2006-01-02T15:04:05", nil)
		case usecase.ErrDoctorNotAvailable:
			response.Error(w, http.StatusBadRequest, "Doctor not available at the selected time", nil)
		case usecase.ErrAvailabilityCheckFailed:
			response.Error(w, http.StatusBadRequest, "Availability check failed, please try again", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment created successfully", appointment)
}

// GetTakenAppointments lists the booked start times for a doctor on a
// date as a bare string list; the doctor service consumes this when
// computing free slots.
func (h *AppointmentHandler) GetTakenAppointments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		// Unresolvable doctor ids yield an empty list, not an error.
		response.JSON(w, http.StatusOK, []string{})
		return
	}

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		return
	}

	times, err := h.appointmentUsecase.GetTakenAppointments(r.Context(), doctorID, date)
	if err != nil {
		response.InternalServerError(w, "Failed to get taken appointments")
		return
	}

	response.JSON(w, http.StatusOK, times)
}

// UpdateStatus applies an ordinal status code. Mirrors the legacy wire
// contract: 200 true on success, 200 false for an unknown id or invalid
// code, 500 false otherwise.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.JSON(w, http.StatusOK, false)
		return
	}
	statusNumber, err := strconv.Atoi(vars["statusNumber"])
	if err != nil {
		response.JSON(w, http.StatusOK, false)
		return
	}

	if err := h.appointmentUsecase.UpdateStatus(r.Context(), id, statusNumber); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrInvalidStatusNumber:
			response.JSON(w, http.StatusOK, false)
		default:
			response.JSON(w, http.StatusInternalServerError, false)
		}
		return
	}

	response.JSON(w, http.StatusOK, true)
}

// IsSlotFree is the local advisory check used by dashboards: true when no
// appointment row exists for the doctor at exactly that instant. The
// booking path uses the remote availability check instead.
func (h *AppointmentHandler) IsSlotFree(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.JSON(w, http.StatusOK, false)
		return
	}

	dateTime, err := time.Parse("2006-01-02T15:04:05", vars["dateTime"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date time format, use 2006-01-02T15:04:05", nil)
		return
	}

	free, err := h.appointmentUsecase.IsSlotFree(r.Context(), doctorID, dateTime)
	if err != nil {
		response.InternalServerError(w, "Failed to check slot")
		return
	}

	response.JSON(w, http.StatusOK, free)
}

func (h *AppointmentHandler) GetByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.GetByDoctorID(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetByPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.GetByPatientID(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
