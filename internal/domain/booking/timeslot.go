package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeSlot  = errors.New("invalid time slot")
	ErrDurationMismatch = errors.New("time slot does not match service duration")
	ErrInsufficientLead = errors.New("insufficient lead time")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrNotCancellable   = errors.New("booking cannot be cancelled")
	ErrAlreadyFinalized = errors.New("lock already finalized")
	ErrLockNotActive    = errors.New("lock is not active")
	ErrLockExpired      = errors.New("lock has expired")
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time        { return ts.start }
func (ts TimeSlot) End() time.Time          { return ts.end }
func (ts TimeSlot) Duration() time.Duration { return ts.end.Sub(ts.start) }

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// ValidateExactDuration rejects ranges that are not exactly one service slot.
func (ts TimeSlot) ValidateExactDuration(duration time.Duration) error {
	if ts.Duration() != duration {
		return ErrDurationMismatch
	}
	return nil
}

func (ts TimeSlot) ValidateLeadTimeAt(now time.Time, minAdvance time.Duration) error {
	if ts.start.Before(now.Add(minAdvance)) {
		return ErrInsufficientLead
	}
	return nil
}

// Overlaps is the half-open interval test shared with the conflict filter.
func (ts TimeSlot) Overlaps(otherStart, otherEnd time.Time) bool {
	return ts.start.Before(otherEnd) && ts.end.After(otherStart)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }
