package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DoctorAvailability represents one recurring weekly availability window.
// A doctor may have any number of windows; overlaps between them are
// tolerated, not merged. DaysOfWeek stores uppercase weekday names
// (MONDAY..SUNDAY) to stay wire-compatible with the other services.
type DoctorAvailability struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DaysOfWeek pq.StringArray `gorm:"type:text[];not null" json:"days_of_week"`
	StartTime  string         `gorm:"type:time;not null" json:"start_time"` // HH:MM
	EndTime    string         `gorm:"type:time;not null" json:"end_time"`   // HH:MM
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availabilities"
}

var weekdayNames = [7]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

// DayName returns the stored representation of a weekday.
func DayName(d time.Weekday) string {
	return weekdayNames[d]
}

// ParseDayName resolves an uppercase weekday name back to time.Weekday.
func ParseDayName(name string) (time.Weekday, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == upper {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// ClockMinutes parses a time-of-day string into minutes since midnight.
// Accepts HH:MM and HH:MM:SS; postgres time columns read back with seconds.
func ClockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ContainsDay reports whether the window is active on the given weekday.
func (a *DoctorAvailability) ContainsDay(day time.Weekday) bool {
	name := DayName(day)
	for _, d := range a.DaysOfWeek {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// CoversClock reports whether a minute-of-day falls inside [StartTime, EndTime).
// The start minute is bookable, the end minute is not.
func (a *DoctorAvailability) CoversClock(minuteOfDay int) bool {
	start, err := ClockMinutes(a.StartTime)
	if err != nil {
		return false
	}
	end, err := ClockMinutes(a.EndTime)
	if err != nil {
		return false
	}
	return minuteOfDay >= start && minuteOfDay < end
}

// CoversInstant reports whether the window makes the doctor available at
// the given instant: the weekday must be in the day set and the time of
// day must fall inside the half-open time range.
func (a *DoctorAvailability) CoversInstant(at time.Time) bool {
	return a.ContainsDay(at.Weekday()) && a.CoversClock(at.Hour()*60+at.Minute())
}
