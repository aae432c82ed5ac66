package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/AMIROUNI/SymptomCheck-sub001/internal/converter"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/delivery/dto"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/entity"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/domain/repository"
	"github.com/AMIROUNI/SymptomCheck-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrInvalidDateTime         = errors.New("invalid date time format, use 2006-01-02T15:04:05")
	ErrDoctorNotAvailable      = errors.New("doctor not available at the selected time")
	ErrAvailabilityCheckFailed = errors.New("availability check failed")
	ErrInvalidStatusNumber     = errors.New("invalid status number")
)

// AvailabilityChecker answers whether a doctor accepts appointments at an
// instant. In the deployed topology this is a network call to the doctor
// service, so implementations return an error for any inconclusive
// outcome (timeout, connection refused, non-2xx).
type AvailabilityChecker interface {
	IsDoctorAvailable(ctx context.Context, doctorID uuid.UUID, dateTime time.Time) (bool, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetTakenAppointments(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
	UpdateStatus(ctx context.Context, id int64, statusNumber int) error
	GetByDoctorID(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetByPatientID(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	IsSlotFree(ctx context.Context, doctorID uuid.UUID, dateTime time.Time) (bool, error)
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	availabilityChecker AvailabilityChecker
	auditService        service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	availabilityChecker AvailabilityChecker,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		availabilityChecker: availabilityChecker,
		auditService:        auditService,
	}
}

// CreateAppointment turns a booking request into a persisted appointment.
//
// Flow:
// 1. Parse and validate the requested instant
// 2. Ask the doctor service whether the doctor is available (synchronous,
//    bounded by the client timeout)
// 3. Inconclusive check (transport failure, non-2xx) -> reject, fail-closed
// 4. Definitive "unavailable" -> reject, nothing persisted
// 5. Definitive "available" -> persist with status PENDING
//
// The check and the write are not atomic across the two services: two
// concurrent requests for the same doctor and instant can both observe
// "available" and both commit. There is no retry loop; a failed attempt
// must be resubmitted by the caller.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	dateTime, err := time.Parse("2006-01-02T15:04:05", req.DateTime)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	available, err := u.availabilityChecker.IsDoctorAvailable(ctx, req.DoctorID, dateTime)
	if err != nil {
		// Fail closed: an inconclusive check never proceeds to booking.
		u.log.Warnf("Availability check failed for doctor %s at %s, rejecting booking: %+v",
			req.DoctorID, req.DateTime, err)
		return nil, ErrAvailabilityCheckFailed
	}
	if !available {
		return nil, ErrDoctorNotAvailable
	}

	appointment := &entity.Appointment{
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		DateTime:    dateTime,
		Description: req.Description,
		Status:      entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	if u.auditService != nil {
		if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &req.PatientID,
			entity.AuditActionAppointmentCreate, "appointment",
			strconv.FormatInt(appointment.ID, 10), appointment); err != nil {
			u.log.Warnf("Failed to audit appointment creation (non-fatal): %+v", err)
		}
	}

	u.log.Infof("Appointment created: id=%d, doctor=%s, patient=%s, dateTime=%s",
		appointment.ID, req.DoctorID, req.PatientID, req.DateTime)
	return converter.AppointmentToResponse(appointment), nil
}

// GetTakenAppointments returns the HH:MM start times already booked for
// the doctor on the given date, sorted ascending.
func (u *appointmentUsecase) GetTakenAppointments(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	appointments, err := u.appointmentRepo.FindByDoctorAndDateRange(u.db.WithContext(ctx), doctorID, startOfDay, endOfDay)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s on %s: %+v", doctorID, date.Format("2006-01-02"), err)
		return nil, err
	}

	times := make([]string, len(appointments))
	for i, appointment := range appointments {
		times[i] = appointment.DateTime.Format("15:04")
	}
	sort.Strings(times)
	return times, nil
}

// UpdateStatus applies an ordinal status code to an appointment. The
// update is a single idempotent write; no availability re-check is
// performed.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id int64, statusNumber int) error {
	status, ok := entity.AppointmentStatusFromNumber(statusNumber)
	if !ok {
		return ErrInvalidStatusNumber
	}

	affected, err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), id, status)
	if err != nil {
		u.log.Warnf("Failed to update status for appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if u.auditService != nil {
		if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), nil,
			entity.AuditActionAppointmentStatusUpdate, "appointment",
			strconv.FormatInt(id, 10), nil, string(status)); err != nil {
			u.log.Warnf("Failed to audit status update (non-fatal): %+v", err)
		}
	}

	u.log.Infof("Appointment status updated: id=%d, status=%s", id, status)
	return nil
}

func (u *appointmentUsecase) GetByDoctorID(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByPatientID(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// IsSlotFree is the local advisory check: true when no appointment row
// exists for the doctor at exactly that instant. It is racy by nature and
// is not consulted by the booking path.
func (u *appointmentUsecase) IsSlotFree(ctx context.Context, doctorID uuid.UUID, dateTime time.Time) (bool, error) {
	exists, err := u.appointmentRepo.ExistsByDoctorAndDateTime(u.db.WithContext(ctx), doctorID, dateTime)
	if err != nil {
		u.log.Warnf("Failed to check slot for doctor %s: %+v", doctorID, err)
		return false, err
	}
	return !exists, nil
}
