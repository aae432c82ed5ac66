package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/dto"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/usecase"
	"github.com/AMIROUNI/SymptomCheck-sub001/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubAppointmentUsecase returns canned results per method.
type stubAppointmentUsecase struct {
	createResp   *dto.AppointmentResponse
	createErr    error
	takenTimes   []string
	takenErr     error
	updateErr    error
	listResp     *dto.AppointmentListResponse
	listErr      error
	slotFree     bool
	slotFreeErr  error
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubAppointmentUsecase) GetTakenAppointments(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	return s.takenTimes, s.takenErr
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, id int64, statusNumber int) error {
	return s.updateErr
}

func (s *stubAppointmentUsecase) GetByDoctorID(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubAppointmentUsecase) GetByPatientID(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubAppointmentUsecase) IsSlotFree(ctx context.Context, doctorID uuid.UUID, dateTime time.Time) (bool, error) {
	return s.slotFree, s.slotFreeErr
}

func newAppointmentTestHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	return NewAppointmentHandler(uc, validator.NewValidator())
}

func createBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.CreateAppointmentRequest{
		DoctorID:  uuid.New(),
		PatientID: uuid.New(),
		DateTime:  "2026-08-24T10:00:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewBuffer(body)
}

func TestCreateAppointmentHandlerSuccess(t *testing.T) {
	uc := &stubAppointmentUsecase{createResp: &dto.AppointmentResponse{ID: 1, Status: "PENDING"}}
	h := newAppointmentTestHandler(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/create", createBody(t))
	h.CreateAppointment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success envelope")
	}
	if envelope.Data.Status != "PENDING" {
		t.Errorf("data.status = %q, want PENDING", envelope.Data.Status)
	}
}

func TestCreateAppointmentHandlerRejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"doctor unavailable", usecase.ErrDoctorNotAvailable, http.StatusBadRequest},
		{"check failed", usecase.ErrAvailabilityCheckFailed, http.StatusBadRequest},
		{"invalid datetime", usecase.ErrInvalidDateTime, http.StatusBadRequest},
		{"storage failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := newAppointmentTestHandler(&stubAppointmentUsecase{createErr: tt.err})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/create", createBody(t))
		h.CreateAppointment(rec, req)

		if rec.Code != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.wantStatus)
		}
	}
}

func TestCreateAppointmentHandlerValidation(t *testing.T) {
	h := newAppointmentTestHandler(&stubAppointmentUsecase{})

	// Missing patientId and dateTime.
	body, _ := json.Marshal(map[string]string{"doctorId": uuid.NewString()})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/create", bytes.NewBuffer(body))
	h.CreateAppointment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetTakenAppointmentsBareList(t *testing.T) {
	uc := &stubAppointmentUsecase{takenTimes: []string{"09:30", "11:00"}}
	h := newAppointmentTestHandler(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/taken-appointments/"+uuid.NewString()+"?date=2026-08-24", nil)
	req = mux.SetURLVars(req, map[string]string{"doctorId": uuid.NewString()})
	h.GetTakenAppointments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var times []string
	if err := json.Unmarshal(rec.Body.Bytes(), &times); err != nil {
		t.Fatalf("body is not a bare string list: %v", err)
	}
	if len(times) != 2 || times[0] != "09:30" {
		t.Errorf("times = %v, want [09:30 11:00]", times)
	}
}

func TestGetTakenAppointmentsMalformedDoctorID(t *testing.T) {
	h := newAppointmentTestHandler(&stubAppointmentUsecase{takenTimes: []string{"09:30"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/taken-appointments/not-a-uuid?date=2026-08-24", nil)
	req = mux.SetURLVars(req, map[string]string{"doctorId": "not-a-uuid"})
	h.GetTakenAppointments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var times []string
	if err := json.Unmarshal(rec.Body.Bytes(), &times); err != nil {
		t.Fatalf("body is not a bare string list: %v", err)
	}
	if len(times) != 0 {
		t.Errorf("unresolvable doctor id must yield an empty list, got %v", times)
	}
}

func TestGetTakenAppointmentsBadDate(t *testing.T) {
	h := newAppointmentTestHandler(&stubAppointmentUsecase{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/taken-appointments/x?date=24-08-2026", nil)
	req = mux.SetURLVars(req, map[string]string{"doctorId": uuid.NewString()})
	h.GetTakenAppointments(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateStatusWireContract(t *testing.T) {
	tests := []struct {
		name       string
		vars       map[string]string
		updateErr  error
		wantStatus int
		wantBody   string
	}{
		{"success", map[string]string{"id": "7", "statusNumber": "1"}, nil, http.StatusOK, "true"},
		{"not found", map[string]string{"id": "7", "statusNumber": "1"}, usecase.ErrAppointmentNotFound, http.StatusOK, "false"},
		{"invalid ordinal", map[string]string{"id": "7", "statusNumber": "9"}, usecase.ErrInvalidStatusNumber, http.StatusOK, "false"},
		{"unparseable id", map[string]string{"id": "abc", "statusNumber": "1"}, nil, http.StatusOK, "false"},
		{"unparseable ordinal", map[string]string{"id": "7", "statusNumber": "abc"}, nil, http.StatusOK, "false"},
		{"storage failure", map[string]string{"id": "7", "statusNumber": "1"}, context.DeadlineExceeded, http.StatusInternalServerError, "false"},
	}

	for _, tt := range tests {
		h := newAppointmentTestHandler(&stubAppointmentUsecase{updateErr: tt.updateErr})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/7/status/1", nil)
		req = mux.SetURLVars(req, tt.vars)
		h.UpdateStatus(rec, req)

		if rec.Code != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.wantStatus)
		}
		var got bool
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Errorf("%s: body is not a bare boolean: %v", tt.name, err)
			continue
		}
		if want := tt.wantBody == "true"; got != want {
			t.Errorf("%s: body = %v, want %s", tt.name, got, tt.wantBody)
		}
	}
}
