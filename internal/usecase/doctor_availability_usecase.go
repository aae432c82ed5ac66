package usecase

import (
	"context"
	"errors"
	"fmt"
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
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
	ErrNoDaysSelected    = errors.New("at least one day of week is required")
	ErrInvalidDayOfWeek  = errors.New("invalid day of week")
)

// DefaultSlotGranularityMinutes is used when a caller does not specify a
// slot granularity.
const DefaultSlotGranularityMinutes = 30

// TakenSlotProvider supplies the start times already consumed by booked
// appointments for a doctor on a given date. In the deployed topology this
// is an HTTP call to the appointment service.
type TakenSlotProvider interface {
	TakenTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
}

type DoctorAvailabilityUsecase interface {
	IsAvailable(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)
	AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time, granularityMinutes int) ([]string, error)
	CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetByDoctorID(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error)
	HasAvailability(ctx context.Context, doctorID uuid.UUID) (bool, error)
	DeleteAvailability(ctx context.Context, doctorID uuid.UUID) (int64, error)
}

type doctorAvailabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.DoctorAvailabilityRepository
	takenSlots       TakenSlotProvider
	auditService     service.AuditService
}

func NewDoctorAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.DoctorAvailabilityRepository,
	takenSlots TakenSlotProvider,
	auditService service.AuditService,
) DoctorAvailabilityUsecase {
	return &doctorAvailabilityUsecase{
		db:               db,
		log:              log,
		availabilityRepo: availabilityRepo,
		takenSlots:       takenSlots,
		auditService:     auditService,
	}
}

// IsAvailable reports whether any of the doctor's windows covers the
// instant: the weekday must be in the window's day set and the time of day
// must fall in [startTime, endTime). A doctor with no configured windows
// is never available.
func (u *doctorAvailabilityUsecase) IsAvailable(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error) {
	availabilities, err := u.availabilityRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availabilities for doctor %s: %+v", doctorID, err)
		return false, err
	}

	for i := range availabilities {
		if availabilities[i].CoversInstant(at) {
			return true, nil
		}
	}
	return false, nil
}

// AvailableSlots enumerates the bookable start times for a doctor on the
// given date: every window active on that weekday is discretized from its
// start time in granularity steps while the slot start stays before the
// window's end, overlapping windows are merged and de-duplicated, and
// times already booked are subtracted. The result is recomputed on every
// call.
func (u *doctorAvailabilityUsecase) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time, granularityMinutes int) ([]string, error) {
	if granularityMinutes <= 0 {
		granularityMinutes = DefaultSlotGranularityMinutes
	}

	availabilities, err := u.availabilityRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availabilities for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	weekday := date.Weekday()
	slotSet := make(map[int]struct{})
	for i := range availabilities {
		window := &availabilities[i]
		if !window.ContainsDay(weekday) {
			continue
		}

		start, err := entity.ClockMinutes(window.StartTime)
		if err != nil {
			u.log.Warnf("Skipping window %d with unparseable start time: %+v", window.ID, err)
			continue
		}
		end, err := entity.ClockMinutes(window.EndTime)
		if err != nil {
			u.log.Warnf("Skipping window %d with unparseable end time: %+v", window.ID, err)
			continue
		}

		for minute := start; minute < end; minute += granularityMinutes {
			slotSet[minute] = struct{}{}
		}
	}

	if len(slotSet) == 0 {
		return []string{}, nil
	}

	// Subtract times consumed by existing appointments.
	taken, err := u.takenSlots.TakenTimes(ctx, doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to fetch taken slots for doctor %s on %s: %+v", doctorID, date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("fetch taken slots: %w", err)
	}
	for _, t := range taken {
		minute, err := entity.ClockMinutes(t)
		if err != nil {
			continue
		}
		delete(slotSet, minute)
	}

	minutes := make([]int, 0, len(slotSet))
	for minute := range slotSet {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)

	slots := make([]string, len(minutes))
	for i, minute := range minutes {
		slots[i] = fmt.Sprintf("%02d:%02d", minute/60, minute%60)
	}
	return slots, nil
}

// CreateAvailability seeds a recurring weekly window during doctor profile
// completion. Windows violating startTime < endTime are rejected; overlaps
// with existing windows are allowed.
func (u *doctorAvailabilityUsecase) CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	start, err := entity.ClockMinutes(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := entity.ClockMinutes(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}

	if len(req.DaysOfWeek) == 0 {
		return nil, ErrNoDaysSelected
	}
	days := make([]string, 0, len(req.DaysOfWeek))
	seen := make(map[time.Weekday]struct{})
	for _, name := range req.DaysOfWeek {
		day, ok := entity.ParseDayName(name)
		if !ok {
			return nil, ErrInvalidDayOfWeek
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, entity.DayName(day))
	}

	availability := &entity.DoctorAvailability{
		DoctorID:   req.DoctorID,
		DaysOfWeek: days,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	if err := u.availabilityRepo.Create(u.db.WithContext(ctx), availability); err != nil {
		u.log.Warnf("Failed to create availability: %+v", err)
		return nil, err
	}

	if u.auditService != nil {
		if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &req.DoctorID,
			entity.AuditActionAvailabilityCreate, "doctor_availability",
			strconv.FormatInt(availability.ID, 10), availability); err != nil {
			u.log.Warnf("Failed to audit availability creation (non-fatal): %+v", err)
		}
	}

	u.log.Infof("Availability created: id=%d, doctor=%s, days=%v, %s-%s",
		availability.ID, req.DoctorID, days, req.StartTime, req.EndTime)
	return converter.AvailabilityToResponse(availability), nil
}

func (u *doctorAvailabilityUsecase) GetByDoctorID(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	availabilities, err := u.availabilityRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availabilities for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Availabilities: converter.AvailabilitiesToResponses(availabilities),
		Total:          len(availabilities),
	}, nil
}

// DeleteAvailability removes every window the doctor has configured,
// used when a doctor re-seeds their schedule from scratch. Returns the
// number of windows removed.
func (u *doctorAvailabilityUsecase) DeleteAvailability(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	affected, err := u.availabilityRepo.DeleteByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete availabilities for doctor %s: %+v", doctorID, err)
		return 0, err
	}

	u.log.Infof("Availabilities deleted: doctor=%s, removed=%d", doctorID, affected)
	return affected, nil
}

// HasAvailability reports whether the doctor has configured at least one
// window; used as a profile-completeness signal.
func (u *doctorAvailabilityUsecase) HasAvailability(ctx context.Context, doctorID uuid.UUID) (bool, error) {
	exists, err := u.availabilityRepo.ExistsByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to check availability existence for doctor %s: %+v", doctorID, err)
		return false, err
	}
	return exists, nil
}
