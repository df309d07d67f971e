package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLocalTime = errors.New("invalid local time")
	ErrInvalidWindow    = errors.New("window end must be after start")
	ErrUnknownTimezone  = errors.New("unknown timezone")
)

// LocalTime is a civil wall-clock time, minutes since midnight.
// It carries no date or zone; absolute instants are derived per calendar
// day so daylight-saving transitions resolve through the tz database.
type LocalTime int

func NewLocalTime(hour, minute int) (LocalTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidLocalTime
	}
	return LocalTime(hour*60 + minute), nil
}

func ParseLocalTime(s string) (LocalTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, ErrInvalidLocalTime
	}
	return NewLocalTime(hour, minute)
}

func (t LocalTime) Hour() int   { return int(t) / 60 }
func (t LocalTime) Minute() int { return int(t) % 60 }

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Date is a civil calendar date with no zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) Next() Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1))
}

func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// At resolves a wall-clock time on this date to an absolute instant.
// The offset comes from the tz database for this specific civil date,
// never from a cached offset, so DST transitions stay correct.
func (d Date) At(t LocalTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, loc)
}

// Rule is a weekly recurring availability window in a professional's agenda.
// A nil ServiceID means the rule applies professional-wide.
type Rule struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      *uuid.UUID
	Weekday        time.Weekday
	Start          LocalTime
	End            LocalTime
	Timezone       string
}

// Exception overrides the weekly rules on a single date: Available=true adds
// a window, Available=false blocks one. Nil Start/End means the whole day.
type Exception struct {
	ID             uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      *uuid.UUID
	Date           Date
	Start          *LocalTime
	End            *LocalTime
	Available      bool
}

func (e Exception) WholeDay() bool {
	return e.Start == nil || e.End == nil
}

// Slot is a candidate bookable interval in absolute time. Ephemeral, never
// persisted.
type Slot struct {
	StartAt time.Time
	EndAt   time.Time
}

// Interval is an occupied absolute time range (booking or lock).
type Interval struct {
	StartAt time.Time
	EndAt   time.Time
}

// Overlaps applies the half-open interval test: [start, end) ranges touch
// only when each starts before the other ends.
func (i Interval) Overlaps(start, end time.Time) bool {
	return start.Before(i.EndAt) && end.After(i.StartAt)
}

func loadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, name)
	}
	return loc, nil
}
