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

type AvailabilityHandler struct {
	availabilityUsecase usecase.DoctorAvailabilityUsecase
	validator           *validator.CustomValidator
	slotGranularity     int
}

func NewAvailabilityHandler(availabilityUsecase usecase.DoctorAvailabilityUsecase, validator *validator.CustomValidator, slotGranularity int) *AvailabilityHandler {
	if slotGranularity <= 0 {
		slotGranularity = usecase.DefaultSlotGranularityMinutes
	}
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
		slotGranularity:     slotGranularity,
	}
}

// IsAvailable answers the cross-service availability check with a bare
// boolean body. An unresolvable doctor id reads as "not available".
func (h *AvailabilityHandler) IsAvailable(w http.ResponseWriter, r *http.Request) {
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

	available, err := h.availabilityUsecase.IsAvailable(r.Context(), doctorID, dateTime)
	if err != nil {
		response.InternalServerError(w, "Failed to check availability")
		return
	}

	response.JSON(w, http.StatusOK, available)
}

// GetDailySlots lists the free HH:MM start times for a doctor on a date.
func (h *AvailabilityHandler) GetDailySlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	doctorID, err := uuid.Parse(query.Get("doctorId"))
	if err != nil {
		response.JSON(w, http.StatusOK, []string{})
		return
	}

	date, err := time.Parse("2006-01-02", query.Get("date"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		return
	}

	granularity := h.slotGranularity
	if raw := query.Get("granularity"); raw != "" {
		granularity, err = strconv.Atoi(raw)
		if err != nil || granularity <= 0 {
			response.Error(w, http.StatusBadRequest, "Invalid granularity, use a positive number of minutes", nil)
			return
		}
	}

	slots, err := h.availabilityUsecase.AvailableSlots(r.Context(), doctorID, date, granularity)
	if err != nil {
		response.InternalServerError(w, "Failed to list available slots")
		return
	}

	response.JSON(w, http.StatusOK, slots)
}

func (h *AvailabilityHandler) GetByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	availabilities, err := h.availabilityUsecase.GetByDoctorID(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get availabilities")
		return
	}

	response.Success(w, http.StatusOK, "Availabilities retrieved successfully", availabilities)
}

// Exists reports whether the doctor has configured any availability; the
// dashboards use it as a profile-completeness signal.
func (h *AvailabilityHandler) Exists(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.JSON(w, http.StatusOK, false)
		return
	}

	exists, err := h.availabilityUsecase.HasAvailability(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to check availability existence")
		return
	}

	response.JSON(w, http.StatusOK, exists)
}

// DeleteByDoctor removes all of the doctor's windows so the schedule can
// be re-seeded.
func (h *AvailabilityHandler) DeleteByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	removed, err := h.availabilityUsecase.DeleteAvailability(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to delete availabilities")
		return
	}

	response.Success(w, http.StatusOK, "Availabilities deleted successfully", map[string]int64{"removed": removed})
}

// CreateAvailability seeds a weekly window during profile completion.
func (h *AvailabilityHandler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.availabilityUsecase.CreateAvailability(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case usecase.ErrInvalidTimeRange:
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		case usecase.ErrNoDaysSelected:
			response.Error(w, http.StatusBadRequest, "At least one day of week is required", nil)
		case usecase.ErrInvalidDayOfWeek:
			response.Error(w, http.StatusBadRequest, "Invalid day of week, use MONDAY..SUNDAY", nil)
		default:
			response.InternalServerError(w, "Failed to create availability")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Availability created successfully", availability)
}
